// Package model はドメインモデルを定義する。
package model

import "time"

// LearningGoal は学習目標を表す。
type LearningGoal struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      GoalStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GoalStatus は学習目標の進捗状態を表す。
type GoalStatus string

const (
	// GoalStatusPlanned は着手前の状態。
	GoalStatusPlanned GoalStatus = "PLANNED"
	// GoalStatusInProgress は進行中の状態。
	GoalStatusInProgress GoalStatus = "IN_PROGRESS"
	// GoalStatusDone は完了した状態。
	GoalStatusDone GoalStatus = "DONE"
)

// IsValidGoalStatus はstatus値が定義済みのいずれかであるかを返す。
func IsValidGoalStatus(s string) bool {
	switch GoalStatus(s) {
	case GoalStatusPlanned, GoalStatusInProgress, GoalStatusDone:
		return true
	}
	return false
}
