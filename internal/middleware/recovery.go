package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recovery はハンドラ内のpanicを捕捉し、500を返してサーバーを守る。
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panicを捕捉しました",
					"panic", rec,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				WriteInternalServerError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
