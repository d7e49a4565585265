package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/hitoshi/careerdesk/internal/model"
)

// GoalService は学習目標サービスのインターフェース。
type GoalService interface {
	List(ctx context.Context, userID string) ([]*model.LearningGoal, error)
	Create(ctx context.Context, userID, title, description string) (*model.LearningGoal, error)
	UpdateStatus(ctx context.Context, userID, id, status string) (*model.LearningGoal, error)
	Delete(ctx context.Context, userID, id string) error
}

// GoalHandler は学習目標のハンドラ。
type GoalHandler struct {
	svc GoalService
}

// NewGoalHandler はGoalHandlerを生成する。
func NewGoalHandler(svc GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

type goalResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toGoalResponse(g *model.LearningGoal) goalResponse {
	return goalResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Status:      string(g.Status),
		CreatedAt:   g.CreatedAt,
	}
}

// List は GET /goals を処理する。
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	goals, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	res := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		res = append(res, toGoalResponse(g))
	}
	writeJSON(w, http.StatusOK, map[string]any{"goals": res})
}

// Create は POST /goals を処理する。
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := h.svc.Create(r.Context(), userID, req.Title, req.Description)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGoalResponse(goal))
}

// UpdateStatus は PATCH /goals を処理する。変更できるのはstatusのみ。
func (h *GoalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := h.svc.UpdateStatus(r.Context(), userID, req.ID, req.Status)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

// Delete は DELETE /goals を処理する。対象IDはボディで受け取る。
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, req.ID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
