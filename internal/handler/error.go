// Package handler はHTTPハンドラを提供する。
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/careerdesk/internal/middleware"
	"github.com/hitoshi/careerdesk/internal/model"
)

// handleServiceError はサービス層のエラーをHTTPレスポンスに変換する。
// APIError以外は詳細を伏せて500を返す。
func handleServiceError(w http.ResponseWriter, err error) {
	apiErr := &model.APIError{}
	if errors.As(err, &apiErr) {
		middleware.WriteErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr.Code), apiErr)
		return
	}

	slog.Error("サービス層で予期しないエラーが発生しました", "error", err)
	middleware.WriteInternalServerError(w)
}

// mapAPIErrorToHTTPStatus はエラーコードをHTTPステータスに対応付ける。
func mapAPIErrorToHTTPStatus(code string) int {
	switch code {
	case model.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case model.ErrCodeInvalidRequest, model.ErrCodeValidationFailed,
		model.ErrCodeEmailTaken, model.ErrCodeInvalidLink:
		return http.StatusBadRequest
	case model.ErrCodeSkillNotFound, model.ErrCodeJobNotFound,
		model.ErrCodeGoalNotFound, model.ErrCodeApplicationNotFound,
		model.ErrCodeUserNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON はリクエストボディをJSONとしてデコードする。
// 失敗時はINVALID_REQUESTを書き込み、falseを返す。
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return false
	}
	return true
}

// writeJSON はレスポンスをJSONで書き込む。
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("レスポンスの書き込みに失敗しました", "error", err)
	}
}

// requireUserID はコンテキストからユーザーIDを取り出す。
// セッションミドルウェアを経由していない場合は401を書き込む。
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		middleware.WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return "", false
	}
	return userID, true
}
