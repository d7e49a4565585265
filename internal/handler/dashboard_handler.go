package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/careerdesk/internal/dashboard"
)

// DashboardService はダッシュボードサービスのインターフェース。
type DashboardService interface {
	Overview(ctx context.Context, userID string) (*dashboard.Overview, error)
}

// DashboardHandler はダッシュボードのハンドラ。
type DashboardHandler struct {
	svc DashboardService
}

// NewDashboardHandler はDashboardHandlerを生成する。
func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Overview は GET /dashboard を処理する。
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	overview, err := h.svc.Overview(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	recentApps := make([]applicationResponse, 0, len(overview.RecentApplications))
	for _, a := range overview.RecentApplications {
		recentApps = append(recentApps, toApplicationResponse(a))
	}
	recentGoals := make([]goalResponse, 0, len(overview.RecentGoals))
	for _, g := range overview.RecentGoals {
		recentGoals = append(recentGoals, toGoalResponse(g))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"counts": map[string]int{
			"skills":       overview.SkillCount,
			"jobs":         overview.JobTargetCount,
			"goals":        overview.GoalCount,
			"applications": overview.ApplicationCount,
		},
		"recentApplications": recentApps,
		"recentGoals":        recentGoals,
	})
}
