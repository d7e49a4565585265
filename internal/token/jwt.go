// Package token はステートレスなセッショントークンの発行と検証を提供する。
//
// トークンはHMAC-SHA256署名付きJWTで、サーバー側には一切保存しない。
// 失効はExpiresAtの経過のみで判定する（個別無効化リストは持たない）。
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hitoshi/careerdesk/internal/model"
)

// ErrInvalidToken は署名不正・期限切れ・形式不正をまとめて表す。
// 呼び出し側は原因を区別せず一様に未認証として扱う。
var ErrInvalidToken = errors.New("セッショントークンが無効です")

// Service はセッショントークンの発行・検証サービス。
type Service struct {
	secret []byte
	maxAge time.Duration
}

// NewService はServiceを生成する。
func NewService(secret string, maxAge time.Duration) *Service {
	return &Service{secret: []byte(secret), maxAge: maxAge}
}

// Issue は指定ユーザーのセッショントークンを発行する。
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("トークンの署名に失敗しました: %w", err)
	}
	return signed, nil
}

// Validate はトークンを検証し、有効ならセッションクレームを返す。
// 署名不正・期限切れ・アルゴリズム不一致はすべてErrInvalidTokenになる。
func (s *Service) Validate(tokenString string) (*model.SessionClaim, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	claim := &model.SessionClaim{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		claim.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		claim.ExpiresAt = claims.ExpiresAt.Time
	}
	return claim, nil
}
