// Package security は入力値の無害化と検証を提供する。
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer は自由記述フィールド（備考・説明文など）からHTMLを除去する。
// 保存時に無害化することで、表示側の実装に依存せずXSSを防ぐ。
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer はSanitizerを生成する。
// StrictPolicyを使用し、すべてのHTMLタグを除去する。
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// SanitizeText はテキストからHTMLタグを除去し、前後の空白を取り除く。
func (s *Sanitizer) SanitizeText(input string) string {
	return strings.TrimSpace(s.policy.Sanitize(input))
}
