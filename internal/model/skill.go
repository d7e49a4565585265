// Package model はドメインモデルを定義する。
package model

import "time"

// Skill はユーザーが保有するスキルを表す。
// Levelは1〜5の自己評価。
type Skill struct {
	ID        string
	UserID    string
	Name      string
	Level     int
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
