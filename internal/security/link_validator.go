package security

import (
	"errors"
	"net/url"
)

// リンク検証エラー
var (
	ErrLinkNotAbsolute   = errors.New("絶対URLではありません")
	ErrLinkInvalidScheme = errors.New("スキームはhttpまたはhttpsのみ許可されています")
	ErrLinkMissingHost   = errors.New("ホスト名がありません")
	ErrLinkMalformed     = errors.New("URLとして解釈できません")
)

// ValidateLink は応募記録のリンクURLを検証する。
// 空文字列はリンク未設定として許可する。
func ValidateLink(raw string) error {
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ErrLinkMalformed
	}
	if !u.IsAbs() {
		return ErrLinkNotAbsolute
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrLinkInvalidScheme
	}
	if u.Host == "" {
		return ErrLinkMissingHost
	}
	return nil
}
