package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hitoshi/careerdesk/internal/metrics"
	"github.com/hitoshi/careerdesk/internal/middleware"
	"github.com/hitoshi/careerdesk/internal/model"
)

// CredentialService は資格情報サービスのインターフェース。
type CredentialService interface {
	Register(ctx context.Context, email, password, name string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

// TokenIssuer はセッショントークン発行のインターフェース。
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthHandler は登録・サインイン・サインアウトのハンドラ。
type AuthHandler struct {
	creds         CredentialService
	tokens        TokenIssuer
	metrics       *metrics.Metrics
	baseURL       string
	cookieDomain  string
	cookieSecure  bool
	sessionMaxAge time.Duration
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(
	creds CredentialService,
	tokens TokenIssuer,
	m *metrics.Metrics,
	baseURL, cookieDomain string,
	cookieSecure bool,
	sessionMaxAge time.Duration,
) *AuthHandler {
	return &AuthHandler{
		creds:         creds,
		tokens:        tokens,
		metrics:       m,
		baseURL:       baseURL,
		cookieDomain:  cookieDomain,
		cookieSecure:  cookieSecure,
		sessionMaxAge: sessionMaxAge,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// Register は POST /register を処理する。
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.creds.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	slog.Info("ユーザーが登録されました", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

// SignIn は POST /sign-in を処理する。
// フォーム送信を前提としたリダイレクト応答を返す。成功時はセッション
// クッキーを設定してBASE_URLへ、失敗時は理由を区別せずサインイン画面へ戻す。
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	email, password, ok := h.credentialsFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.creds.Authenticate(r.Context(), email, password)
	if err != nil {
		slog.Error("サインイン処理に失敗しました", "error", err)
		middleware.WriteInternalServerError(w)
		return
	}
	if user == nil {
		h.metrics.RecordSignIn(false)
		http.Redirect(w, r, h.baseURL+"/auth/sign-in?error=credentials", http.StatusSeeOther)
		return
	}

	signed, err := h.tokens.Issue(user.ID)
	if err != nil {
		slog.Error("トークンの発行に失敗しました", "error", err)
		middleware.WriteInternalServerError(w)
		return
	}

	http.SetCookie(w, h.sessionCookie(signed, int(h.sessionMaxAge.Seconds())))
	h.metrics.RecordSignIn(true)
	slog.Info("ユーザーがサインインしました", "user_id", user.ID)
	http.Redirect(w, r, h.baseURL, http.StatusSeeOther)
}

// Logout は POST /logout を処理する。
// ステートレスなトークンはサーバー側で失効できないため、クッキーの破棄のみ行う。
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	http.Redirect(w, r, h.baseURL, http.StatusSeeOther)
}

// credentialsFromRequest はフォームまたはJSONから資格情報を取り出す。
func (h *AuthHandler) credentialsFromRequest(w http.ResponseWriter, r *http.Request) (email, password string, ok bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if !decodeJSON(w, r, &req) {
			return "", "", false
		}
		return req.Email, req.Password, true
	}

	if err := r.ParseForm(); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return "", "", false
	}
	return r.PostFormValue("email"), r.PostFormValue("password"), true
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
