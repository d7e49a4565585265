// Package model はドメインモデルを定義する。
package model

import "time"

// JobTarget は応募を検討している求人（ターゲット）を表す。
type JobTarget struct {
	ID          string
	UserID      string
	Title       string
	Company     string
	Description string
	Seniority   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RequiredSkill は求人が要求するスキルを表す。
// 所有者は親JobTargetのUserIDを通じて推移的に決まるため、
// 直接のUserIDは持たない。親の削除時には必ず一緒に削除される。
type RequiredSkill struct {
	ID          string
	JobTargetID string
	Name        string
	// Importance は求人における重要度（1〜5）。
	Importance int
	CreatedAt  time.Time
}

// GapResult は求人の要求スキルと保有スキルの差分を表す。
// 求人詳細の読み取りごとに再計算される派生データであり、永続化しない。
type GapResult struct {
	RequiredSkillID string
	Name            string
	Importance      int
	// ObservedLevel は同名の保有スキルのレベル。未保有なら0。
	ObservedLevel int
	// Gap は Importance - ObservedLevel。
	Gap            int
	Classification GapClass
}

// GapClass はギャップの分類を表す。
type GapClass string

const (
	// GapClassMeets は要求を満たしている状態（gap <= 0）。
	GapClassMeets GapClass = "meets"
	// GapClassSlight は小さなギャップ（gap 1〜2）。
	GapClassSlight GapClass = "slight gap"
	// GapClassBig は大きなギャップ（gap >= 3）。
	GapClassBig GapClass = "big gap"
)
