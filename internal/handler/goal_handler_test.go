package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hitoshi/careerdesk/internal/model"
)

// mockGoalService はテスト用の学習目標サービスモック。
type mockGoalService struct {
	listFunc         func(ctx context.Context, userID string) ([]*model.LearningGoal, error)
	createFunc       func(ctx context.Context, userID, title, description string) (*model.LearningGoal, error)
	updateStatusFunc func(ctx context.Context, userID, id, status string) (*model.LearningGoal, error)
	deleteFunc       func(ctx context.Context, userID, id string) error
}

func (m *mockGoalService) List(ctx context.Context, userID string) ([]*model.LearningGoal, error) {
	return m.listFunc(ctx, userID)
}

func (m *mockGoalService) Create(ctx context.Context, userID, title, description string) (*model.LearningGoal, error) {
	return m.createFunc(ctx, userID, title, description)
}

func (m *mockGoalService) UpdateStatus(ctx context.Context, userID, id, status string) (*model.LearningGoal, error) {
	return m.updateStatusFunc(ctx, userID, id, status)
}

func (m *mockGoalService) Delete(ctx context.Context, userID, id string) error {
	return m.deleteFunc(ctx, userID, id)
}

func TestGoalHandler_UpdateStatus(t *testing.T) {
	svc := &mockGoalService{
		updateStatusFunc: func(ctx context.Context, userID, id, status string) (*model.LearningGoal, error) {
			return &model.LearningGoal{ID: id, UserID: userID, Status: model.GoalStatus(status)}, nil
		},
	}
	h := NewGoalHandler(svc)

	body := `{"id":"goal-1","status":"DONE"}`
	req := withUserID(httptest.NewRequest(http.MethodPatch, "/goals", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"status":"DONE"`) {
		t.Errorf("更新後の目標が返るべき: %s", rec.Body.String())
	}
}

func TestGoalHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	svc := &mockGoalService{
		updateStatusFunc: func(ctx context.Context, userID, id, status string) (*model.LearningGoal, error) {
			return nil, model.NewValidationError("statusの値が不正です")
		},
	}
	h := NewGoalHandler(svc)

	body := `{"id":"goal-1","status":"FINISHED"}`
	req := withUserID(httptest.NewRequest(http.MethodPatch, "/goals", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGoalHandler_Create(t *testing.T) {
	svc := &mockGoalService{
		createFunc: func(ctx context.Context, userID, title, description string) (*model.LearningGoal, error) {
			return &model.LearningGoal{ID: "goal-1", UserID: userID, Title: title, Status: model.GoalStatusPlanned}, nil
		},
	}
	h := NewGoalHandler(svc)

	body := `{"title":"Goの並行処理を学ぶ"}`
	req := withUserID(httptest.NewRequest(http.MethodPost, "/goals", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if !strings.Contains(rec.Body.String(), `"status":"PLANNED"`) {
		t.Errorf("初期statusはPLANNEDであるべき: %s", rec.Body.String())
	}
}
