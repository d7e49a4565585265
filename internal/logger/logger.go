// Package logger は構造化ログの初期化を提供する。
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup は指定の出力先にJSON形式の構造化ロガーを設定する。
func Setup(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// SetupDefault は標準出力にロガーを設定する。
func SetupDefault() *slog.Logger {
	return Setup(os.Stdout)
}
