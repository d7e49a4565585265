package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/careerdesk/internal/middleware"
	"github.com/hitoshi/careerdesk/internal/model"
)

// UserService はユーザーサービスのインターフェース。
type UserService interface {
	Profile(ctx context.Context, userID string) (*model.User, error)
	Withdraw(ctx context.Context, userID string) error
}

// UserHandler はユーザープロフィールと退会のハンドラ。
type UserHandler struct {
	svc          UserService
	cookieDomain string
	cookieSecure bool
}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler(svc UserService, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{
		svc:          svc,
		cookieDomain: cookieDomain,
		cookieSecure: cookieSecure,
	}
}

// Me は GET /me を処理する。
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.svc.Profile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Withdraw は DELETE /users/me を処理する。
// 所有する全リソースを削除した上でセッションクッキーも破棄する。
func (h *UserHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Withdraw(r.Context(), userID); err != nil {
		handleServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
