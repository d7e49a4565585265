// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, career, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeInvalidRequest      = "INVALID_REQUEST"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeEmailTaken          = "EMAIL_TAKEN"
	ErrCodeInvalidLink         = "INVALID_LINK"
	ErrCodeSkillNotFound       = "SKILL_NOT_FOUND"
	ErrCodeJobNotFound         = "JOB_NOT_FOUND"
	ErrCodeGoalNotFound        = "GOAL_NOT_FOUND"
	ErrCodeApplicationNotFound = "APPLICATION_NOT_FOUND"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
)

// NewUnauthorizedError は認証エラーを生成する。
// セッションの欠落・不正・期限切れを呼び出し側で区別してはならない。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "認証が必要です。",
		Category: "auth",
		Action:   "サインインしてください。",
	}
}

// NewInvalidRequestError はリクエスト形式のエラーを生成する。
func NewInvalidRequestError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  "リクエストの形式が不正です。",
		Category: "validation",
		Action:   "リクエストボディを確認してください。",
	}
}

// NewValidationError は入力値検証エラーを生成する。
func NewValidationError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeValidationFailed,
		Message:  fmt.Sprintf("入力値が不正です: %s", reason),
		Category: "validation",
		Action:   "入力内容を確認してください。",
	}
}

// NewEmailTakenError はメールアドレス重複エラーを生成する。
// 情報漏えいのトレードオフは認識した上で、登録導線の利便性を優先し明示的に返す。
func NewEmailTakenError() *APIError {
	return &APIError{
		Code:     ErrCodeEmailTaken,
		Message:  "このメールアドレスは既に登録されています。",
		Category: "validation",
		Action:   "別のメールアドレスを使用するか、サインインしてください。",
	}
}

// NewInvalidLinkError は応募リンクのURL形式エラーを生成する。
func NewInvalidLinkError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidLink,
		Message:  fmt.Sprintf("リンクのURLが不正です: %s", reason),
		Category: "validation",
		Action:   "https://example.com のような完全なURLを入力してください。",
	}
}

// NewSkillNotFoundError はスキル未検出エラーを生成する。
// 存在しない場合と他ユーザー所有の場合を意図的に区別しない。
func NewSkillNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeSkillNotFound,
		Message:  "指定されたスキルが見つかりません。",
		Category: "career",
		Action:   "スキル一覧を確認してください。",
	}
}

// NewJobNotFoundError は求人ターゲット未検出エラーを生成する。
// 存在しない場合と他ユーザー所有の場合を意図的に区別しない。
func NewJobNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeJobNotFound,
		Message:  "指定された求人ターゲットが見つかりません。",
		Category: "career",
		Action:   "求人ターゲット一覧を確認してください。",
	}
}

// NewGoalNotFoundError は学習目標未検出エラーを生成する。
// 存在しない場合と他ユーザー所有の場合を意図的に区別しない。
func NewGoalNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeGoalNotFound,
		Message:  "指定された学習目標が見つかりません。",
		Category: "career",
		Action:   "学習目標一覧を確認してください。",
	}
}

// NewApplicationNotFoundError は応募記録未検出エラーを生成する。
// 存在しない場合と他ユーザー所有の場合を意図的に区別しない。
func NewApplicationNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeApplicationNotFound,
		Message:  "指定された応募記録が見つかりません。",
		Category: "career",
		Action:   "応募一覧を確認してください。",
	}
}

// NewUserNotFoundError はユーザーが見つからない場合のエラーを生成する。
func NewUserNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  "ユーザーが見つかりません。",
		Category: "auth",
		Action:   "サインインし直してください。",
	}
}
