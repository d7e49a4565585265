package handler

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/careerdesk/internal/metrics"
	"github.com/hitoshi/careerdesk/internal/middleware"
)

// RouterDeps はルーター構築に必要な依存。
type RouterDeps struct {
	Auth        *AuthHandler
	User        *UserHandler
	Skill       *SkillHandler
	Job         *JobHandler
	Goal        *GoalHandler
	Application *ApplicationHandler
	Dashboard   *DashboardHandler

	DB                *sql.DB
	TokenValidator    middleware.TokenValidator
	Metrics           *metrics.Metrics
	GeneralLimiter    *middleware.RateLimiter
	SignInLimiter     *middleware.RateLimiter
	CORSAllowedOrigin string
}

// NewRouter はアプリケーションのルーターを構築する。
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(deps.CORSAllowedOrigin))
	r.Use(deps.Metrics.Middleware)

	// 認証不要のエンドポイント
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		// DB疎通も含めて生存確認する
		if deps.DB != nil {
			if err := deps.DB.PingContext(req.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("db unreachable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", deps.Metrics.Handler())
	r.Post("/register", deps.Auth.Register)
	r.With(deps.SignInLimiter.PerIPMiddleware).Post("/sign-in", deps.Auth.SignIn)
	r.Post("/logout", deps.Auth.Logout)

	// 認証必須のエンドポイント
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(deps.TokenValidator))
		r.Use(deps.GeneralLimiter.PerUserMiddleware)

		r.Get("/me", deps.User.Me)
		r.Delete("/users/me", deps.User.Withdraw)

		r.Get("/skills", deps.Skill.List)
		r.Post("/skills", deps.Skill.Create)
		r.Delete("/skills", deps.Skill.Delete)

		r.Get("/jobs", deps.Job.List)
		r.Post("/jobs", deps.Job.Create)
		r.Delete("/jobs", deps.Job.Delete)
		r.Get("/jobs/{id}", deps.Job.Detail)
		r.Post("/job-required-skills", deps.Job.AddRequiredSkill)

		r.Get("/goals", deps.Goal.List)
		r.Post("/goals", deps.Goal.Create)
		r.Patch("/goals", deps.Goal.UpdateStatus)
		r.Delete("/goals", deps.Goal.Delete)

		r.Get("/applications", deps.Application.List)
		r.Post("/applications", deps.Application.Create)
		r.Patch("/applications", deps.Application.UpdateStatus)
		r.Delete("/applications", deps.Application.Delete)

		r.Get("/dashboard", deps.Dashboard.Overview)
	})

	return r
}
