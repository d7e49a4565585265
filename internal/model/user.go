// Package model はドメインモデルを定義する。
package model

import "time"

// User は登録済みユーザー（アイデンティティ）を表す。
// PasswordHashはbcryptハッシュであり、APIレスポンスには一切含めない。
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionClaim は検証済みセッショントークンのペイロードを表す。
// サーバー側には永続化しない（ステートレス）。
type SessionClaim struct {
	// Subject はトークンが指すユーザーID。
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
