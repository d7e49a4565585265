// Package application は応募記録の管理機能を提供する。
package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/careerdesk/internal/model"
	"github.com/hitoshi/careerdesk/internal/repository"
	"github.com/hitoshi/careerdesk/internal/security"
)

// Service は応募記録サービス。
type Service struct {
	appRepo   repository.ApplicationRepository
	sanitizer *security.Sanitizer
}

// NewService はServiceを生成する。
func NewService(appRepo repository.ApplicationRepository, sanitizer *security.Sanitizer) *Service {
	return &Service{appRepo: appRepo, sanitizer: sanitizer}
}

// List はユーザーの応募記録一覧を応募日時降順で返す。
func (s *Service) List(ctx context.Context, userID string) ([]*model.JobApplication, error) {
	apps, err := s.appRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("応募記録一覧の取得に失敗しました: %w", err)
	}
	return apps, nil
}

// CreateInput は応募記録の作成入力。
type CreateInput struct {
	Company   string
	Role      string
	Status    string     // 空ならAPPLIED
	AppliedAt *time.Time // nilなら現在時刻
	Link      string
	Notes     string
}

// Create は応募記録を作成する。
// リンクはhttp/httpsの絶対URLのみ許可し、備考はHTMLを除去して保存する。
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*model.JobApplication, error) {
	company := strings.TrimSpace(input.Company)
	if company == "" {
		return nil, model.NewValidationError("会社名は必須です")
	}
	role := strings.TrimSpace(input.Role)
	if role == "" {
		return nil, model.NewValidationError("職種は必須です")
	}

	status := model.ApplicationStatusApplied
	if input.Status != "" {
		if !model.IsValidApplicationStatus(input.Status) {
			return nil, model.NewValidationError("statusの値が不正です")
		}
		status = model.ApplicationStatus(input.Status)
	}

	link := strings.TrimSpace(input.Link)
	if err := security.ValidateLink(link); err != nil {
		return nil, model.NewInvalidLinkError(err.Error())
	}

	now := time.Now()
	appliedAt := now
	if input.AppliedAt != nil {
		appliedAt = *input.AppliedAt
	}

	app := &model.JobApplication{
		ID:        uuid.New().String(),
		UserID:    userID,
		Company:   company,
		Role:      role,
		Status:    status,
		AppliedAt: appliedAt,
		Link:      link,
		Notes:     s.sanitizer.SanitizeText(input.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("応募記録の作成に失敗しました: %w", err)
	}
	return app, nil
}

// UpdateStatus は応募記録のstatusを更新する。
// status以外のフィールドはこの経路では変更できない。
func (s *Service) UpdateStatus(ctx context.Context, userID, id, status string) (*model.JobApplication, error) {
	if !model.IsValidApplicationStatus(status) {
		return nil, model.NewValidationError("statusの値が不正です")
	}

	existing, err := s.appRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("応募記録の確認に失敗しました: %w", err)
	}
	if existing == nil {
		return nil, model.NewApplicationNotFoundError()
	}

	if err := s.appRepo.UpdateStatus(ctx, id, userID, model.ApplicationStatus(status)); err != nil {
		return nil, fmt.Errorf("応募記録の更新に失敗しました: %w", err)
	}

	existing.Status = model.ApplicationStatus(status)
	return existing, nil
}

// Delete は指定IDの応募記録を削除する。
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	existing, err := s.appRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("応募記録の確認に失敗しました: %w", err)
	}
	if existing == nil {
		return model.NewApplicationNotFoundError()
	}

	if err := s.appRepo.DeleteByIDAndUser(ctx, id, userID); err != nil {
		return fmt.Errorf("応募記録の削除に失敗しました: %w", err)
	}
	return nil
}
