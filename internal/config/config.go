// Package config はアプリケーション設定を管理する。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config はアプリケーション全体の設定。
type Config struct {
	// DatabaseURL はPostgreSQLの接続文字列
	DatabaseURL string

	// SessionSecret はセッショントークンの署名鍵
	SessionSecret string

	// SessionMaxAge はセッショントークンの有効期間
	SessionMaxAge time.Duration

	// BaseURL はサインイン後のリダイレクト先ベースURL
	BaseURL string

	// ServerPort はHTTPサーバーのリッスンポート
	ServerPort int

	// CookieDomain はセッションクッキーのDomain属性（空なら未設定）
	CookieDomain string

	// CookieSecure はセッションクッキーのSecure属性
	CookieSecure bool

	// CORSAllowedOrigin はCORSで許可するオリジン（空なら同一オリジンのみ）
	CORSAllowedOrigin string

	// RateLimitGeneral は認証済みAPIの1ユーザーあたり毎分リクエスト上限
	RateLimitGeneral int

	// RateLimitSignIn はサインイン試行の1IPあたり毎分上限
	RateLimitSignIn int

	// BcryptCost はパスワードハッシュのコストパラメータ
	BcryptCost int
}

// Load は環境変数から設定を読み込む。
// 必須の環境変数が欠けている場合はエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		SessionMaxAge:     getEnvDuration("SESSION_MAX_AGE", 24*time.Hour),
		BaseURL:           os.Getenv("BASE_URL"),
		ServerPort:        getEnvInt("SERVER_PORT", 8080),
		CookieDomain:      os.Getenv("COOKIE_DOMAIN"),
		CORSAllowedOrigin: os.Getenv("CORS_ALLOWED_ORIGIN"),
		RateLimitGeneral:  getEnvInt("RATE_LIMIT_GENERAL", 120),
		RateLimitSignIn:   getEnvInt("RATE_LIMIT_SIGNIN", 10),
		BcryptCost:        getEnvInt("BCRYPT_COST", 12),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.SessionSecret == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if cfg.BaseURL == "" {
		missing = append(missing, "BASE_URL")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("必須の環境変数が設定されていません: %s", strings.Join(missing, ", "))
	}

	// httpsで配信する場合のみSecure属性を付ける
	cfg.CookieSecure = strings.HasPrefix(cfg.BaseURL, "https://")

	return cfg, nil
}

// getEnvInt は整数型の環境変数を取得する。未設定・解釈不能ならデフォルト値を返す。
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvDuration は秒数指定の環境変数をDurationとして取得する。
// 未設定・解釈不能ならデフォルト値を返す。
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
