package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/hitoshi/careerdesk/internal/model"
)

// SkillService はスキルサービスのインターフェース。
type SkillService interface {
	List(ctx context.Context, userID string) ([]*model.Skill, error)
	Create(ctx context.Context, userID, name string, level int, category string) (*model.Skill, error)
	Delete(ctx context.Context, userID, id string) error
}

// SkillHandler はスキルのハンドラ。
type SkillHandler struct {
	svc SkillService
}

// NewSkillHandler はSkillHandlerを生成する。
func NewSkillHandler(svc SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

type skillResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

func toSkillResponse(s *model.Skill) skillResponse {
	return skillResponse{
		ID:        s.ID,
		Name:      s.Name,
		Level:     s.Level,
		Category:  s.Category,
		CreatedAt: s.CreatedAt,
	}
}

func toSkillResponses(skills []*model.Skill) []skillResponse {
	res := make([]skillResponse, 0, len(skills))
	for _, s := range skills {
		res = append(res, toSkillResponse(s))
	}
	return res
}

// List は GET /skills を処理する。
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	skills, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"skills": toSkillResponses(skills)})
}

// Create は POST /skills を処理する。
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name     string `json:"name"`
		Level    int    `json:"level"`
		Category string `json:"category"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	skill, err := h.svc.Create(r.Context(), userID, req.Name, req.Level, req.Category)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSkillResponse(skill))
}

// Delete は DELETE /skills を処理する。対象IDはボディで受け取る。
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
