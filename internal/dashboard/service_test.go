package dashboard

import (
	"context"
	"fmt"
	"testing"

	"github.com/hitoshi/careerdesk/internal/model"
)

type mockSkillRepo struct{ skills []*model.Skill }

func (m *mockSkillRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*model.Skill, error) {
	return nil, nil
}
func (m *mockSkillRepo) ListByUserID(ctx context.Context, userID string) ([]*model.Skill, error) {
	return m.skills, nil
}
func (m *mockSkillRepo) Create(ctx context.Context, skill *model.Skill) error           { return nil }
func (m *mockSkillRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error { return nil }
func (m *mockSkillRepo) DeleteByUserID(ctx context.Context, userID string) error        { return nil }

type mockJobRepo struct{ jobs []*model.JobTarget }

func (m *mockJobRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*model.JobTarget, error) {
	return nil, nil
}
func (m *mockJobRepo) ListByUserID(ctx context.Context, userID string) ([]*model.JobTarget, error) {
	return m.jobs, nil
}
func (m *mockJobRepo) Create(ctx context.Context, job *model.JobTarget) error         { return nil }
func (m *mockJobRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error { return nil }
func (m *mockJobRepo) DeleteByUserID(ctx context.Context, userID string) error        { return nil }
func (m *mockJobRepo) ListRequiredSkills(ctx context.Context, jobTargetID string) ([]*model.RequiredSkill, error) {
	return nil, nil
}
func (m *mockJobRepo) CreateRequiredSkill(ctx context.Context, rs *model.RequiredSkill) error {
	return nil
}

type mockGoalRepo struct{ goals []*model.LearningGoal }

func (m *mockGoalRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*model.LearningGoal, error) {
	return nil, nil
}
func (m *mockGoalRepo) ListByUserID(ctx context.Context, userID string) ([]*model.LearningGoal, error) {
	return m.goals, nil
}
func (m *mockGoalRepo) Create(ctx context.Context, goal *model.LearningGoal) error { return nil }
func (m *mockGoalRepo) UpdateStatus(ctx context.Context, id, userID string, status model.GoalStatus) error {
	return nil
}
func (m *mockGoalRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error { return nil }
func (m *mockGoalRepo) DeleteByUserID(ctx context.Context, userID string) error        { return nil }

type mockAppRepo struct{ apps []*model.JobApplication }

func (m *mockAppRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*model.JobApplication, error) {
	return nil, nil
}
func (m *mockAppRepo) ListByUserID(ctx context.Context, userID string) ([]*model.JobApplication, error) {
	return m.apps, nil
}
func (m *mockAppRepo) Create(ctx context.Context, app *model.JobApplication) error { return nil }
func (m *mockAppRepo) UpdateStatus(ctx context.Context, id, userID string, status model.ApplicationStatus) error {
	return nil
}
func (m *mockAppRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error { return nil }
func (m *mockAppRepo) DeleteByUserID(ctx context.Context, userID string) error        { return nil }

func TestService_Overview(t *testing.T) {
	apps := make([]*model.JobApplication, 7)
	for i := range apps {
		apps[i] = &model.JobApplication{ID: fmt.Sprintf("a%d", i)}
	}

	svc := NewService(
		&mockSkillRepo{skills: []*model.Skill{{ID: "s1"}, {ID: "s2"}}},
		&mockJobRepo{jobs: []*model.JobTarget{{ID: "j1"}}},
		&mockGoalRepo{goals: []*model.LearningGoal{{ID: "g1"}, {ID: "g2"}, {ID: "g3"}}},
		&mockAppRepo{apps: apps},
	)

	overview, err := svc.Overview(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if overview.SkillCount != 2 {
		t.Errorf("SkillCount = %d, want 2", overview.SkillCount)
	}
	if overview.JobTargetCount != 1 {
		t.Errorf("JobTargetCount = %d, want 1", overview.JobTargetCount)
	}
	if overview.GoalCount != 3 {
		t.Errorf("GoalCount = %d, want 3", overview.GoalCount)
	}
	if overview.ApplicationCount != 7 {
		t.Errorf("ApplicationCount = %d, want 7", overview.ApplicationCount)
	}
	if len(overview.RecentApplications) != 5 {
		t.Errorf("直近応募は%d件に切り詰めるべき: %d", recentLimit, len(overview.RecentApplications))
	}
	if overview.RecentApplications[0].ID != "a0" {
		t.Errorf("リポジトリの並び順を保つべき: %q", overview.RecentApplications[0].ID)
	}
	if len(overview.RecentGoals) != 3 {
		t.Errorf("上限未満の一覧はそのまま返すべき: %d", len(overview.RecentGoals))
	}
}

func TestService_Overview_Empty(t *testing.T) {
	svc := NewService(&mockSkillRepo{}, &mockJobRepo{}, &mockGoalRepo{}, &mockAppRepo{})

	overview, err := svc.Overview(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if overview.SkillCount != 0 || overview.ApplicationCount != 0 {
		t.Errorf("空のユーザーは全カウント0であるべき: %+v", overview)
	}
}
