// Package dashboard はユーザーの活動概況を集計する。
package dashboard

import (
	"context"
	"fmt"

	"github.com/hitoshi/careerdesk/internal/model"
	"github.com/hitoshi/careerdesk/internal/repository"
)

// recentLimit はダッシュボードに表示する直近項目の件数。
const recentLimit = 5

// Overview はダッシュボードの集計結果。
type Overview struct {
	SkillCount         int
	JobTargetCount     int
	GoalCount          int
	ApplicationCount   int
	RecentApplications []*model.JobApplication
	RecentGoals        []*model.LearningGoal
}

// Service はダッシュボードサービス。
type Service struct {
	skillRepo repository.SkillRepository
	jobRepo   repository.JobTargetRepository
	goalRepo  repository.GoalRepository
	appRepo   repository.ApplicationRepository
}

// NewService はServiceを生成する。
func NewService(
	skillRepo repository.SkillRepository,
	jobRepo repository.JobTargetRepository,
	goalRepo repository.GoalRepository,
	appRepo repository.ApplicationRepository,
) *Service {
	return &Service{
		skillRepo: skillRepo,
		jobRepo:   jobRepo,
		goalRepo:  goalRepo,
		appRepo:   appRepo,
	}
}

// Overview はユーザーの活動概況を返す。
// 各一覧はリポジトリのソート順（応募は応募日時降順、目標は作成日時降順）を
// そのまま利用し、先頭から直近分を切り出す。
func (s *Service) Overview(ctx context.Context, userID string) (*Overview, error) {
	skills, err := s.skillRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("スキル一覧の取得に失敗しました: %w", err)
	}
	jobs, err := s.jobRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("求人ターゲット一覧の取得に失敗しました: %w", err)
	}
	goals, err := s.goalRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("学習目標一覧の取得に失敗しました: %w", err)
	}
	apps, err := s.appRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("応募記録一覧の取得に失敗しました: %w", err)
	}

	return &Overview{
		SkillCount:         len(skills),
		JobTargetCount:     len(jobs),
		GoalCount:          len(goals),
		ApplicationCount:   len(apps),
		RecentApplications: head(apps, recentLimit),
		RecentGoals:        head(goals, recentLimit),
	}, nil
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
