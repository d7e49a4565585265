// Package model はドメインモデルを定義する。
package model

import "time"

// JobApplication は応募の記録を表す。
type JobApplication struct {
	ID        string
	UserID    string
	Company   string
	Role      string
	Status    ApplicationStatus
	AppliedAt time.Time
	Link      string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplicationStatus は応募の選考状態を表す。
type ApplicationStatus string

const (
	// ApplicationStatusApplied は応募済みの状態。
	ApplicationStatusApplied ApplicationStatus = "APPLIED"
	// ApplicationStatusOnlineAssessment はオンライン試験中の状態。
	ApplicationStatusOnlineAssessment ApplicationStatus = "ONLINE_ASSESSMENT"
	// ApplicationStatusInterview は面接中の状態。
	ApplicationStatusInterview ApplicationStatus = "INTERVIEW"
	// ApplicationStatusOffer はオファー受領の状態。
	ApplicationStatusOffer ApplicationStatus = "OFFER"
	// ApplicationStatusRejected は不採用の状態。
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// IsValidApplicationStatus はstatus値が定義済みのいずれかであるかを返す。
func IsValidApplicationStatus(s string) bool {
	switch ApplicationStatus(s) {
	case ApplicationStatusApplied, ApplicationStatusOnlineAssessment,
		ApplicationStatusInterview, ApplicationStatusOffer, ApplicationStatusRejected:
		return true
	}
	return false
}
