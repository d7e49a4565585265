// Package app はアプリケーションの起動と配線を担当する。
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hitoshi/careerdesk/internal/application"
	"github.com/hitoshi/careerdesk/internal/auth"
	"github.com/hitoshi/careerdesk/internal/config"
	"github.com/hitoshi/careerdesk/internal/dashboard"
	"github.com/hitoshi/careerdesk/internal/database"
	"github.com/hitoshi/careerdesk/internal/goal"
	"github.com/hitoshi/careerdesk/internal/handler"
	"github.com/hitoshi/careerdesk/internal/jobtarget"
	"github.com/hitoshi/careerdesk/internal/metrics"
	"github.com/hitoshi/careerdesk/internal/middleware"
	"github.com/hitoshi/careerdesk/internal/repository"
	"github.com/hitoshi/careerdesk/internal/security"
	"github.com/hitoshi/careerdesk/internal/skill"
	"github.com/hitoshi/careerdesk/internal/token"
	"github.com/hitoshi/careerdesk/internal/user"
)

// shutdownTimeout はグレースフルシャットダウンの待機上限。
const shutdownTimeout = 10 * time.Second

// runServe はHTTPサーバーを起動する。
func runServe() int {
	// 1. 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		return 1
	}

	// 2. データベース接続
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		slog.Error("データベース接続に失敗しました", "error", err)
		return 1
	}
	defer db.Close()

	// 3. マイグレーション適用
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		return 1
	}

	// 4. リポジトリ
	userRepo := repository.NewPostgresUserRepo(db)
	skillRepo := repository.NewPostgresSkillRepo(db)
	jobRepo := repository.NewPostgresJobTargetRepo(db)
	goalRepo := repository.NewPostgresGoalRepo(db)
	appRepo := repository.NewPostgresApplicationRepo(db)

	// 5. サービス
	sanitizer := security.NewSanitizer()
	tokenSvc := token.NewService(cfg.SessionSecret, cfg.SessionMaxAge)
	authSvc := auth.NewService(userRepo, cfg.BcryptCost)
	skillSvc := skill.NewService(skillRepo)
	jobSvc := jobtarget.NewService(jobRepo, skillRepo, sanitizer)
	goalSvc := goal.NewService(goalRepo, sanitizer)
	appSvc := application.NewService(appRepo, sanitizer)
	userSvc := user.NewService(userRepo, skillRepo, jobRepo, goalRepo, appRepo)
	dashboardSvc := dashboard.NewService(skillRepo, jobRepo, goalRepo, appRepo)

	// 6. メトリクスとレートリミッタ
	m := metrics.New()
	generalLimiter := middleware.NewRateLimiter(cfg.RateLimitGeneral)
	signInLimiter := middleware.NewRateLimiter(cfg.RateLimitSignIn)

	// 7. ハンドラとルーター
	router := handler.NewRouter(handler.RouterDeps{
		Auth: handler.NewAuthHandler(authSvc, tokenSvc, m,
			cfg.BaseURL, cfg.CookieDomain, cfg.CookieSecure, cfg.SessionMaxAge),
		User:              handler.NewUserHandler(userSvc, cfg.CookieDomain, cfg.CookieSecure),
		Skill:             handler.NewSkillHandler(skillSvc),
		Job:               handler.NewJobHandler(jobSvc),
		Goal:              handler.NewGoalHandler(goalSvc),
		Application:       handler.NewApplicationHandler(appSvc),
		Dashboard:         handler.NewDashboardHandler(dashboardSvc),
		DB:                db,
		TokenValidator:    tokenSvc,
		Metrics:           m,
		GeneralLimiter:    generalLimiter,
		SignInLimiter:     signInLimiter,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
	})

	// 8. サーバー起動とグレースフルシャットダウン
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("サーバーを起動します", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("サーバーが異常終了しました", "error", err)
		return 1
	case sig := <-sigCh:
		slog.Info("シグナルを受信しました。シャットダウンします", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("シャットダウンに失敗しました", "error", err)
		return 1
	}

	slog.Info("サーバーを停止しました")
	return 0
}

// runMigrate はマイグレーションのみを適用して終了する。
func runMigrate() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		return 1
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		slog.Error("データベース接続に失敗しました", "error", err)
		return 1
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		return 1
	}

	slog.Info("マイグレーションが完了しました")
	return 0
}

// runHealthcheck はローカルのサーバーに疎通確認を行う。コンテナのヘルスチェック用。
func runHealthcheck() int {
	port := 8080
	if cfg, err := config.Load(); err == nil {
		port = cfg.ServerPort
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://localhost:%d/health", port))
	if err != nil {
		slog.Error("ヘルスチェックに失敗しました", "error", err)
		return 1
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("ヘルスチェックが失敗ステータスを返しました", "status", resp.StatusCode)
		return 1
	}
	return 0
}
