package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/hitoshi/careerdesk/internal/application"
	"github.com/hitoshi/careerdesk/internal/middleware"
	"github.com/hitoshi/careerdesk/internal/model"
)

// ApplicationService は応募記録サービスのインターフェース。
type ApplicationService interface {
	List(ctx context.Context, userID string) ([]*model.JobApplication, error)
	Create(ctx context.Context, userID string, input application.CreateInput) (*model.JobApplication, error)
	UpdateStatus(ctx context.Context, userID, id, status string) (*model.JobApplication, error)
	Delete(ctx context.Context, userID, id string) error
}

// ApplicationHandler は応募記録のハンドラ。
type ApplicationHandler struct {
	svc ApplicationService
}

// NewApplicationHandler はApplicationHandlerを生成する。
func NewApplicationHandler(svc ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type applicationResponse struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"appliedAt"`
	Link      string    `json:"link"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

func toApplicationResponse(a *model.JobApplication) applicationResponse {
	return applicationResponse{
		ID:        a.ID,
		Company:   a.Company,
		Role:      a.Role,
		Status:    string(a.Status),
		AppliedAt: a.AppliedAt,
		Link:      a.Link,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
	}
}

// List は GET /applications を処理する。
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	apps, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	res := make([]applicationResponse, 0, len(apps))
	for _, a := range apps {
		res = append(res, toApplicationResponse(a))
	}
	writeJSON(w, http.StatusOK, map[string]any{"applications": res})
}

// Create は POST /applications を処理する。
// appliedAtはRFC 3339形式で受け取り、省略時は現在時刻になる。
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		Company   string `json:"company"`
		Role      string `json:"role"`
		Status    string `json:"status"`
		AppliedAt string `json:"appliedAt"`
		Link      string `json:"link"`
		Notes     string `json:"notes"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	input := application.CreateInput{
		Company: req.Company,
		Role:    req.Role,
		Status:  req.Status,
		Link:    req.Link,
		Notes:   req.Notes,
	}
	if req.AppliedAt != "" {
		appliedAt, err := time.Parse(time.RFC3339, req.AppliedAt)
		if err != nil {
			middleware.WriteErrorResponse(w, http.StatusBadRequest,
				model.NewValidationError("appliedAtはRFC 3339形式で指定してください"))
			return
		}
		input.AppliedAt = &appliedAt
	}

	app, err := h.svc.Create(r.Context(), userID, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// UpdateStatus は PATCH /applications を処理する。変更できるのはstatusのみ。
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	app, err := h.svc.UpdateStatus(r.Context(), userID, req.ID, req.Status)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Delete は DELETE /applications を処理する。対象IDはボディで受け取る。
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
