package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/careerdesk/internal/jobtarget"
	"github.com/hitoshi/careerdesk/internal/model"
)

// JobTargetService は求人ターゲットサービスのインターフェース。
type JobTargetService interface {
	List(ctx context.Context, userID string) ([]*model.JobTarget, error)
	Create(ctx context.Context, userID, title, company, description, seniority string) (*model.JobTarget, error)
	Detail(ctx context.Context, userID, id string) (*jobtarget.Detail, error)
	AddRequiredSkill(ctx context.Context, userID, jobTargetID, name string, importance int) (*model.RequiredSkill, error)
	Delete(ctx context.Context, userID, id string) error
}

// JobHandler は求人ターゲットのハンドラ。
type JobHandler struct {
	svc JobTargetService
}

// NewJobHandler はJobHandlerを生成する。
func NewJobHandler(svc JobTargetService) *JobHandler {
	return &JobHandler{svc: svc}
}

type jobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Seniority   string    `json:"seniority"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toJobResponse(j *model.JobTarget) jobResponse {
	return jobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Description: j.Description,
		Seniority:   j.Seniority,
		CreatedAt:   j.CreatedAt,
	}
}

type requiredSkillResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Importance int    `json:"importance"`
}

type gapResponse struct {
	RequiredSkillID string `json:"requiredSkillId"`
	Name            string `json:"name"`
	Importance      int    `json:"importance"`
	ObservedLevel   int    `json:"observedLevel"`
	Gap             int    `json:"gap"`
	Classification  string `json:"classification"`
}

// List は GET /jobs を処理する。
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	jobs, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	res := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		res = append(res, toJobResponse(j))
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": res})
}

// Create は POST /jobs を処理する。
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		Title       string `json:"title"`
		Company     string `json:"company"`
		Description string `json:"description"`
		Seniority   string `json:"seniority"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	job, err := h.svc.Create(r.Context(), userID, req.Title, req.Company, req.Description, req.Seniority)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toJobResponse(job))
}

// Detail は GET /jobs/{id} を処理する。
// 要求スキルとギャップ分析を含む詳細を返す。
func (h *JobHandler) Detail(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.Detail(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	required := make([]requiredSkillResponse, 0, len(detail.RequiredSkills))
	for _, rs := range detail.RequiredSkills {
		required = append(required, requiredSkillResponse{
			ID:         rs.ID,
			Name:       rs.Name,
			Importance: rs.Importance,
		})
	}

	gaps := make([]gapResponse, 0, len(detail.Gaps))
	for _, g := range detail.Gaps {
		gaps = append(gaps, gapResponse{
			RequiredSkillID: g.RequiredSkillID,
			Name:            g.Name,
			Importance:      g.Importance,
			ObservedLevel:   g.ObservedLevel,
			Gap:             g.Gap,
			Classification:  string(g.Classification),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"job":            toJobResponse(detail.Job),
		"requiredSkills": required,
		"gaps":           gaps,
	})
}

// AddRequiredSkill は POST /job-required-skills を処理する。
func (h *JobHandler) AddRequiredSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		JobID      string `json:"jobId"`
		Name       string `json:"name"`
		Importance int    `json:"importance"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	rs, err := h.svc.AddRequiredSkill(r.Context(), userID, req.JobID, req.Name, req.Importance)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, requiredSkillResponse{
		ID:         rs.ID,
		Name:       rs.Name,
		Importance: rs.Importance,
	})
}

// Delete は DELETE /jobs を処理する。対象IDはボディで受け取る。
// 要求スキルも同一トランザクションで削除される。
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
