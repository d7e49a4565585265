package middleware

import (
	"context"
	"net/http"

	"github.com/hitoshi/careerdesk/internal/model"
)

// SessionCookieName はセッショントークンを運ぶクッキー名。
const SessionCookieName = "session_token"

// contextKey はコンテキストキーの衝突を避けるための独自型。
type contextKey string

const userIDKey contextKey = "userID"

// TokenValidator はセッショントークンの検証インターフェース。
type TokenValidator interface {
	Validate(tokenString string) (*model.SessionClaim, error)
}

// SessionAuth はセッションクッキーを検証し、ユーザーIDをコンテキストに載せる。
// クッキーの欠落・トークン不正・期限切れはすべて同一の401として応答し、
// 原因を区別できる情報を返さない。
func SessionAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			claim, err := validator.Validate(cookie.Value)
			if err != nil {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			ctx := ContextWithUserID(r.Context(), claim.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithUserID はユーザーIDをコンテキストに設定する。
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext はコンテキストからユーザーIDを取得する。
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
