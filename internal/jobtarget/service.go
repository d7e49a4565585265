// Package jobtarget は求人ターゲットとギャップ分析の機能を提供する。
package jobtarget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/careerdesk/internal/gap"
	"github.com/hitoshi/careerdesk/internal/model"
	"github.com/hitoshi/careerdesk/internal/repository"
	"github.com/hitoshi/careerdesk/internal/security"
)

// 重要度の値域
const (
	MinImportance = 1
	MaxImportance = 5
)

// Detail は求人ターゲットの詳細（要求スキルとギャップ分析付き）。
type Detail struct {
	Job            *model.JobTarget
	RequiredSkills []*model.RequiredSkill
	Gaps           []model.GapResult
}

// Service は求人ターゲットサービス。
type Service struct {
	jobRepo   repository.JobTargetRepository
	skillRepo repository.SkillRepository
	sanitizer *security.Sanitizer
}

// NewService はServiceを生成する。
func NewService(jobRepo repository.JobTargetRepository, skillRepo repository.SkillRepository, sanitizer *security.Sanitizer) *Service {
	return &Service{
		jobRepo:   jobRepo,
		skillRepo: skillRepo,
		sanitizer: sanitizer,
	}
}

// List はユーザーの求人ターゲット一覧を作成日時降順で返す。
func (s *Service) List(ctx context.Context, userID string) ([]*model.JobTarget, error) {
	jobs, err := s.jobRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("求人ターゲット一覧の取得に失敗しました: %w", err)
	}
	return jobs, nil
}

// Create は求人ターゲットを作成する。
func (s *Service) Create(ctx context.Context, userID, title, company, description, seniority string) (*model.JobTarget, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, model.NewValidationError("タイトルは必須です")
	}

	now := time.Now()
	job := &model.JobTarget{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Company:     strings.TrimSpace(company),
		Description: s.sanitizer.SanitizeText(description),
		Seniority:   strings.TrimSpace(seniority),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("求人ターゲットの作成に失敗しました: %w", err)
	}
	return job, nil
}

// Detail は求人ターゲットの詳細を返す。
// 要求スキルと保有スキルを突き合わせたギャップ分析を含む。
func (s *Service) Detail(ctx context.Context, userID, id string) (*Detail, error) {
	job, err := s.jobRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("求人ターゲットの取得に失敗しました: %w", err)
	}
	if job == nil {
		return nil, model.NewJobNotFoundError()
	}

	required, err := s.jobRepo.ListRequiredSkills(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("要求スキル一覧の取得に失敗しました: %w", err)
	}

	observed, err := s.skillRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("保有スキル一覧の取得に失敗しました: %w", err)
	}

	return &Detail{
		Job:            job,
		RequiredSkills: required,
		Gaps:           gap.Score(required, observed),
	}, nil
}

// AddRequiredSkill は求人ターゲットに要求スキルを追加する。
// 親の所有者確認を先に行い、他ユーザーの求人には子を作成できない。
func (s *Service) AddRequiredSkill(ctx context.Context, userID, jobTargetID, name string, importance int) (*model.RequiredSkill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.NewValidationError("スキル名は必須です")
	}
	if importance < MinImportance || importance > MaxImportance {
		return nil, model.NewValidationError(fmt.Sprintf("重要度は%d〜%dの範囲で指定してください", MinImportance, MaxImportance))
	}

	parent, err := s.jobRepo.FindByIDAndUser(ctx, jobTargetID, userID)
	if err != nil {
		return nil, fmt.Errorf("求人ターゲットの確認に失敗しました: %w", err)
	}
	if parent == nil {
		return nil, model.NewJobNotFoundError()
	}

	rs := &model.RequiredSkill{
		ID:          uuid.New().String(),
		JobTargetID: parent.ID,
		Name:        name,
		Importance:  importance,
		CreatedAt:   time.Now(),
	}

	if err := s.jobRepo.CreateRequiredSkill(ctx, rs); err != nil {
		return nil, fmt.Errorf("要求スキルの作成に失敗しました: %w", err)
	}
	return rs, nil
}

// Delete は求人ターゲットを要求スキルもろとも削除する。
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	existing, err := s.jobRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("求人ターゲットの確認に失敗しました: %w", err)
	}
	if existing == nil {
		return model.NewJobNotFoundError()
	}

	if err := s.jobRepo.DeleteByIDAndUser(ctx, id, userID); err != nil {
		return fmt.Errorf("求人ターゲットの削除に失敗しました: %w", err)
	}
	return nil
}
