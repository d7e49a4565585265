// Package goal は学習目標の管理機能を提供する。
package goal

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

// Service は学習目標サービス。
type Service struct {
	goalRepo  repository.GoalRepository
	sanitizer *security.Sanitizer
}

// NewService はServiceを生成する。
func NewService(goalRepo repository.GoalRepository, sanitizer *security.Sanitizer) *Service {
	return &Service{goalRepo: goalRepo, sanitizer: sanitizer}
}

// List はユーザーの学習目標一覧を作成日時降順で返す。
func (s *Service) List(ctx context.Context, userID string) ([]*model.LearningGoal, error) {
	goals, err := s.goalRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("学習目標一覧の取得に失敗しました: %w", err)
	}
	return goals, nil
}

// Create は学習目標を作成する。初期statusはPLANNED。
func (s *Service) Create(ctx context.Context, userID, title, description string) (*model.LearningGoal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, model.NewValidationError("タイトルは必須です")
	}

	now := time.Now()
	goal := &model.LearningGoal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: s.sanitizer.SanitizeText(description),
		Status:      model.GoalStatusPlanned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("学習目標の作成に失敗しました: %w", err)
	}
	return goal, nil
}

// UpdateStatus は学習目標のstatusを更新する。
// status以外のフィールドはこの経路では変更できない。
func (s *Service) UpdateStatus(ctx context.Context, userID, id, status string) (*model.LearningGoal, error) {
	if !model.IsValidGoalStatus(status) {
		return nil, model.NewValidationError("statusの値が不正です")
	}

	existing, err := s.goalRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("学習目標の確認に失敗しました: %w", err)
	}
	if existing == nil {
		return nil, model.NewGoalNotFoundError()
	}

	if err := s.goalRepo.UpdateStatus(ctx, id, userID, model.GoalStatus(status)); err != nil {
		return nil, fmt.Errorf("学習目標の更新に失敗しました: %w", err)
	}

	existing.Status = model.GoalStatus(status)
	return existing, nil
}

// Delete は指定IDの学習目標を削除する。
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	existing, err := s.goalRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("学習目標の確認に失敗しました: %w", err)
	}
	if existing == nil {
		return model.NewGoalNotFoundError()
	}

	if err := s.goalRepo.DeleteByIDAndUser(ctx, id, userID); err != nil {
		return fmt.Errorf("学習目標の削除に失敗しました: %w", err)
	}
	return nil
}
