// Package skill は保有スキルの管理機能を提供する。
package skill

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/careerdesk/internal/model"
	"github.com/hitoshi/careerdesk/internal/repository"
)

// レベルの値域
const (
	MinLevel = 1
	MaxLevel = 5
)

// Service はスキルサービス。
type Service struct {
	skillRepo repository.SkillRepository
}

// NewService はServiceを生成する。
func NewService(skillRepo repository.SkillRepository) *Service {
	return &Service{skillRepo: skillRepo}
}

// List はユーザーのスキル一覧を名前昇順で返す。
func (s *Service) List(ctx context.Context, userID string) ([]*model.Skill, error) {
	skills, err := s.skillRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("スキル一覧の取得に失敗しました: %w", err)
	}
	return skills, nil
}

// Create はスキルを作成する。
func (s *Service) Create(ctx context.Context, userID, name string, level int, category string) (*model.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.NewValidationError("スキル名は必須です")
	}
	if level < MinLevel || level > MaxLevel {
		return nil, model.NewValidationError(fmt.Sprintf("レベルは%d〜%dの範囲で指定してください", MinLevel, MaxLevel))
	}

	now := time.Now()
	skill := &model.Skill{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Level:     level,
		Category:  strings.TrimSpace(category),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, fmt.Errorf("スキルの作成に失敗しました: %w", err)
	}
	return skill, nil
}

// Delete は指定IDのスキルを削除する。
// 存在しない場合と他ユーザー所有の場合はどちらも未検出として扱う。
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	existing, err := s.skillRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("スキルの確認に失敗しました: %w", err)
	}
	if existing == nil {
		return model.NewSkillNotFoundError()
	}

	if err := s.skillRepo.DeleteByIDAndUser(ctx, id, userID); err != nil {
		return fmt.Errorf("スキルの削除に失敗しました: %w", err)
	}
	return nil
}
