package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/careerdesk/internal/model"
	"github.com/hitoshi/careerdesk/internal/security"
)

// mockGoalRepo はテスト用の学習目標リポジトリモック。
type mockGoalRepo struct {
	findByIDAndUserFunc   func(ctx context.Context, id, userID string) (*model.LearningGoal, error)
	listByUserIDFunc      func(ctx context.Context, userID string) ([]*model.LearningGoal, error)
	createFunc            func(ctx context.Context, goal *model.LearningGoal) error
	updateStatusFunc      func(ctx context.Context, id, userID string, status model.GoalStatus) error
	deleteByIDAndUserFunc func(ctx context.Context, id, userID string) error
	deleteByUserIDFunc    func(ctx context.Context, userID string) error
}

func (m *mockGoalRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*model.LearningGoal, error) {
	if m.findByIDAndUserFunc != nil {
		return m.findByIDAndUserFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockGoalRepo) ListByUserID(ctx context.Context, userID string) ([]*model.LearningGoal, error) {
	if m.listByUserIDFunc != nil {
		return m.listByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockGoalRepo) Create(ctx context.Context, goal *model.LearningGoal) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, goal)
	}
	return nil
}

func (m *mockGoalRepo) UpdateStatus(ctx context.Context, id, userID string, status model.GoalStatus) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, userID, status)
	}
	return nil
}

func (m *mockGoalRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	if m.deleteByIDAndUserFunc != nil {
		return m.deleteByIDAndUserFunc(ctx, id, userID)
	}
	return nil
}

func (m *mockGoalRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if m.deleteByUserIDFunc != nil {
		return m.deleteByUserIDFunc(ctx, userID)
	}
	return nil
}

func newTestService(repo *mockGoalRepo) *Service {
	return NewService(repo, security.NewSanitizer())
}

func TestService_Create(t *testing.T) {
	var created *model.LearningGoal
	repo := &mockGoalRepo{
		createFunc: func(ctx context.Context, goal *model.LearningGoal) error {
			created = goal
			return nil
		},
	}
	svc := newTestService(repo)

	goal, err := svc.Create(context.Background(), "user-1", "Goの並行処理を学ぶ", `<script>x</script>チャネルとsync`)
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if goal.Status != model.GoalStatusPlanned {
		t.Errorf("初期statusはPLANNEDであるべき: %q", goal.Status)
	}
	if goal.Description != "チャネルとsync" {
		t.Errorf("説明文はHTMLを除去すべき: %q", goal.Description)
	}
	if created == nil {
		t.Error("リポジトリのCreateが呼ばれるべき")
	}
}

func TestService_Create_TitleRequired(t *testing.T) {
	svc := newTestService(&mockGoalRepo{})

	_, err := svc.Create(context.Background(), "user-1", "  ", "")
	apiErr := &model.APIError{}
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeValidationFailed {
		t.Errorf("VALIDATION_FAILEDが返るべき: %v", err)
	}
}

func TestService_UpdateStatus(t *testing.T) {
	repo := &mockGoalRepo{
		findByIDAndUserFunc: func(ctx context.Context, id, userID string) (*model.LearningGoal, error) {
			return &model.LearningGoal{ID: id, UserID: userID, Status: model.GoalStatusPlanned}, nil
		},
	}
	svc := newTestService(repo)

	goal, err := svc.UpdateStatus(context.Background(), "user-1", "goal-1", "IN_PROGRESS")
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if goal.Status != model.GoalStatusInProgress {
		t.Errorf("Status = %q, want %q", goal.Status, model.GoalStatusInProgress)
	}
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc := newTestService(&mockGoalRepo{})

	// 不正なstatusは所有者確認より前に弾く
	_, err := svc.UpdateStatus(context.Background(), "user-1", "goal-1", "FINISHED")
	apiErr := &model.APIError{}
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeValidationFailed {
		t.Errorf("VALIDATION_FAILEDが返るべき: %v", err)
	}
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	repo := &mockGoalRepo{
		findByIDAndUserFunc: func(ctx context.Context, id, userID string) (*model.LearningGoal, error) {
			return nil, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), "user-1", "goal-1", "DONE")
	apiErr := &model.APIError{}
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeGoalNotFound {
		t.Errorf("GOAL_NOT_FOUNDが返るべき: %v", err)
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &mockGoalRepo{
		findByIDAndUserFunc: func(ctx context.Context, id, userID string) (*model.LearningGoal, error) {
			return nil, nil
		},
	}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), "user-1", "goal-1")
	apiErr := &model.APIError{}
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeGoalNotFound {
		t.Errorf("GOAL_NOT_FOUNDが返るべき: %v", err)
	}
}
