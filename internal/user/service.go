// Package user はユーザープロフィールと退会処理を提供する。
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/careerdesk/internal/model"
	"github.com/hitoshi/careerdesk/internal/repository"
)

// Service はユーザーサービス。
type Service struct {
	userRepo  repository.UserRepository
	skillRepo repository.SkillRepository
	jobRepo   repository.JobTargetRepository
	goalRepo  repository.GoalRepository
	appRepo   repository.ApplicationRepository
}

// NewService はServiceを生成する。
func NewService(
	userRepo repository.UserRepository,
	skillRepo repository.SkillRepository,
	jobRepo repository.JobTargetRepository,
	goalRepo repository.GoalRepository,
	appRepo repository.ApplicationRepository,
) *Service {
	return &Service{
		userRepo:  userRepo,
		skillRepo: skillRepo,
		jobRepo:   jobRepo,
		goalRepo:  goalRepo,
		appRepo:   appRepo,
	}
}

// Profile は認証済みユーザー自身の情報を返す。
func (s *Service) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError()
	}
	return user, nil
}

// Withdraw はユーザーを退会させ、所有する全リソースを削除する。
// FK制約のCASCADEにも守られているが、削除順を明示して依存の深い順に消す。
func (s *Service) Withdraw(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("ユーザーの確認に失敗しました: %w", err)
	}
	if user == nil {
		return model.NewUserNotFoundError()
	}

	if err := s.appRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("応募記録の削除に失敗しました: %w", err)
	}
	if err := s.goalRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("学習目標の削除に失敗しました: %w", err)
	}
	if err := s.jobRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("求人ターゲットの削除に失敗しました: %w", err)
	}
	if err := s.skillRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("スキルの削除に失敗しました: %w", err)
	}
	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return fmt.Errorf("ユーザーの削除に失敗しました: %w", err)
	}

	slog.Info("ユーザーが退会しました", "user_id", userID)
	return nil
}
