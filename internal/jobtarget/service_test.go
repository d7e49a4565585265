package jobtarget

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/careerdesk/internal/model"
	"github.com/hitoshi/careerdesk/internal/security"
)

// mockJobRepo はテスト用の求人ターゲットリポジトリモック。
type mockJobRepo struct {
	findByIDAndUserFunc     func(ctx context.Context, id, userID string) (*model.JobTarget, error)
	listByUserIDFunc        func(ctx context.Context, userID string) ([]*model.JobTarget, error)
	createFunc              func(ctx context.Context, job *model.JobTarget) error
	deleteByIDAndUserFunc   func(ctx context.Context, id, userID string) error
	deleteByUserIDFunc      func(ctx context.Context, userID string) error
	listRequiredSkillsFunc  func(ctx context.Context, jobTargetID string) ([]*model.RequiredSkill, error)
	createRequiredSkillFunc func(ctx context.Context, rs *model.RequiredSkill) error
}

func (m *mockJobRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*model.JobTarget, error) {
	if m.findByIDAndUserFunc != nil {
		return m.findByIDAndUserFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockJobRepo) ListByUserID(ctx context.Context, userID string) ([]*model.JobTarget, error) {
	if m.listByUserIDFunc != nil {
		return m.listByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockJobRepo) Create(ctx context.Context, job *model.JobTarget) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, job)
	}
	return nil
}

func (m *mockJobRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	if m.deleteByIDAndUserFunc != nil {
		return m.deleteByIDAndUserFunc(ctx, id, userID)
	}
	return nil
}

func (m *mockJobRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if m.deleteByUserIDFunc != nil {
		return m.deleteByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *mockJobRepo) ListRequiredSkills(ctx context.Context, jobTargetID string) ([]*model.RequiredSkill, error) {
	if m.listRequiredSkillsFunc != nil {
		return m.listRequiredSkillsFunc(ctx, jobTargetID)
	}
	return nil, nil
}

func (m *mockJobRepo) CreateRequiredSkill(ctx context.Context, rs *model.RequiredSkill) error {
	if m.createRequiredSkillFunc != nil {
		return m.createRequiredSkillFunc(ctx, rs)
	}
	return nil
}

// mockSkillRepo はテスト用のスキルリポジトリモック。
type mockSkillRepo struct {
	listByUserIDFunc func(ctx context.Context, userID string) ([]*model.Skill, error)
}

func (m *mockSkillRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*model.Skill, error) {
	return nil, nil
}

func (m *mockSkillRepo) ListByUserID(ctx context.Context, userID string) ([]*model.Skill, error) {
	if m.listByUserIDFunc != nil {
		return m.listByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSkillRepo) Create(ctx context.Context, skill *model.Skill) error { return nil }

func (m *mockSkillRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error { return nil }

func (m *mockSkillRepo) DeleteByUserID(ctx context.Context, userID string) error { return nil }

func newTestService(jobRepo *mockJobRepo, skillRepo *mockSkillRepo) *Service {
	return NewService(jobRepo, skillRepo, security.NewSanitizer())
}

func TestService_Detail_WithGapAnalysis(t *testing.T) {
	jobRepo := &mockJobRepo{
		findByIDAndUserFunc: func(ctx context.Context, id, userID string) (*model.JobTarget, error) {
			return &model.JobTarget{ID: id, UserID: userID, Title: "バックエンドエンジニア"}, nil
		},
		listRequiredSkillsFunc: func(ctx context.Context, jobTargetID string) ([]*model.RequiredSkill, error) {
			return []*model.RequiredSkill{
				{ID: "r1", JobTargetID: jobTargetID, Name: "React", Importance: 4},
				{ID: "r2", JobTargetID: jobTargetID, Name: "Go", Importance: 5},
			}, nil
		},
	}
	skillRepo := &mockSkillRepo{
		listByUserIDFunc: func(ctx context.Context, userID string) ([]*model.Skill, error) {
			return []*model.Skill{{ID: "s1", UserID: userID, Name: "react", Level: 2}}, nil
		},
	}
	svc := newTestService(jobRepo, skillRepo)

	detail, err := svc.Detail(context.Background(), "user-1", "job-1")
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if len(detail.Gaps) != 2 {
		t.Fatalf("len(Gaps) = %d, want 2", len(detail.Gaps))
	}
	if detail.Gaps[0].ObservedLevel != 2 || detail.Gaps[0].Classification != model.GapClassSlight {
		t.Errorf("Reactは大文字小文字を無視して照合されるべき: %+v", detail.Gaps[0])
	}
	if detail.Gaps[1].ObservedLevel != 0 || detail.Gaps[1].Classification != model.GapClassBig {
		t.Errorf("未保有スキルは観測レベル0で重大ギャップ: %+v", detail.Gaps[1])
	}
}

func TestService_Detail_NotFound(t *testing.T) {
	jobRepo := &mockJobRepo{
		findByIDAndUserFunc: func(ctx context.Context, id, userID string) (*model.JobTarget, error) {
			return nil, nil
		},
	}
	svc := newTestService(jobRepo, &mockSkillRepo{})

	_, err := svc.Detail(context.Background(), "user-1", "job-1")
	apiErr := &model.APIError{}
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeJobNotFound {
		t.Errorf("JOB_NOT_FOUNDが返るべき: %v", err)
	}
}

func TestService_AddRequiredSkill(t *testing.T) {
	var created *model.RequiredSkill
	jobRepo := &mockJobRepo{
		findByIDAndUserFunc: func(ctx context.Context, id, userID string) (*model.JobTarget, error) {
			return &model.JobTarget{ID: id, UserID: userID}, nil
		},
		createRequiredSkillFunc: func(ctx context.Context, rs *model.RequiredSkill) error {
			created = rs
			return nil
		},
	}
	svc := newTestService(jobRepo, &mockSkillRepo{})

	rs, err := svc.AddRequiredSkill(context.Background(), "user-1", "job-1", "Go", 5)
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if rs.JobTargetID != "job-1" {
		t.Errorf("JobTargetID = %q, want %q", rs.JobTargetID, "job-1")
	}
	if created == nil {
		t.Error("リポジトリのCreateRequiredSkillが呼ばれるべき")
	}
}

func TestService_AddRequiredSkill_ParentNotFound(t *testing.T) {
	// 他ユーザーの求人には子を作成できない
	jobRepo := &mockJobRepo{
		findByIDAndUserFunc: func(ctx context.Context, id, userID string) (*model.JobTarget, error) {
			return nil, nil
		},
		createRequiredSkillFunc: func(ctx context.Context, rs *model.RequiredSkill) error {
			t.Error("親未検出時にCreateRequiredSkillが呼ばれてはならない")
			return nil
		},
	}
	svc := newTestService(jobRepo, &mockSkillRepo{})

	_, err := svc.AddRequiredSkill(context.Background(), "user-1", "job-1", "Go", 5)
	apiErr := &model.APIError{}
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeJobNotFound {
		t.Errorf("JOB_NOT_FOUNDが返るべき: %v", err)
	}
}

func TestService_AddRequiredSkill_Validation(t *testing.T) {
	svc := newTestService(&mockJobRepo{}, &mockSkillRepo{})

	tests := []struct {
		name       string
		skillName  string
		importance int
	}{
		{"名前空", "", 3},
		{"重要度下限未満", "Go", 0},
		{"重要度上限超過", "Go", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddRequiredSkill(context.Background(), "user-1", "job-1", tt.skillName, tt.importance)
			apiErr := &model.APIError{}
			if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeValidationFailed {
				t.Errorf("VALIDATION_FAILEDが返るべき: %v", err)
			}
		})
	}
}

func TestService_Create_SanitizesDescription(t *testing.T) {
	var created *model.JobTarget
	jobRepo := &mockJobRepo{
		createFunc: func(ctx context.Context, job *model.JobTarget) error {
			created = job
			return nil
		},
	}
	svc := newTestService(jobRepo, &mockSkillRepo{})

	_, err := svc.Create(context.Background(), "user-1", "SRE", "Acme", "<b>大規模</b>基盤の運用", "senior")
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if created.Description != "大規模基盤の運用" {
		t.Errorf("説明文はHTMLを除去すべき: %q", created.Description)
	}
}
