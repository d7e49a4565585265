// Package repository はデータ永続化のインターフェースを定義する。
//
// ユーザー所有リソースの取得・更新・削除はすべて所有者IDでスコープされる。
// 「存在しない」と「他ユーザーの所有」はどちらもnil（未検出）として返し、
// 呼び出し側が両者を区別できないようにする。これは情報秘匿のための
// 意図的な仕様であり、Forbiddenを返してはならない。
package repository

import (
	"context"

	"github.com/hitoshi/careerdesk/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail はメールアドレスでユーザーを検索する。
	// 大文字小文字を区別せず比較する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// Create はユーザーを作成する。
	Create(ctx context.Context, user *model.User) error

	// DeleteByID は指定IDのユーザーを削除する。
	// 所有リソースはFK制約でCASCADE削除される。
	DeleteByID(ctx context.Context, id string) error
}

// SkillRepository はスキルデータの永続化インターフェース。
type SkillRepository interface {
	// FindByIDAndUser は指定IDのスキルを所有者スコープで取得する。
	// 存在しない場合も他ユーザー所有の場合もnilを返す。
	FindByIDAndUser(ctx context.Context, id, userID string) (*model.Skill, error)

	// ListByUserID はユーザーのスキル一覧を名前昇順で返す。
	ListByUserID(ctx context.Context, userID string) ([]*model.Skill, error)

	// Create はスキルを作成する。UserIDは呼び出し側で必ず設定する。
	Create(ctx context.Context, skill *model.Skill) error

	// DeleteByIDAndUser は指定IDのスキルを所有者スコープで削除する。
	DeleteByIDAndUser(ctx context.Context, id, userID string) error

	// DeleteByUserID はユーザーの全スキルを削除する。退会処理用。
	DeleteByUserID(ctx context.Context, userID string) error
}

// JobTargetRepository は求人ターゲットと要求スキルの永続化インターフェース。
// RequiredSkillの所有者は親JobTargetのUserIDを通じて推移的に決まるため、
// 子の作成・取得は必ず親の所有者確認を経由する。
type JobTargetRepository interface {
	// FindByIDAndUser は指定IDの求人ターゲットを所有者スコープで取得する。
	// 存在しない場合も他ユーザー所有の場合もnilを返す。
	FindByIDAndUser(ctx context.Context, id, userID string) (*model.JobTarget, error)

	// ListByUserID はユーザーの求人ターゲット一覧を作成日時降順で返す。
	ListByUserID(ctx context.Context, userID string) ([]*model.JobTarget, error)

	// Create は求人ターゲットを作成する。
	Create(ctx context.Context, job *model.JobTarget) error

	// DeleteByIDAndUser は求人ターゲットを所有者スコープで削除する。
	// 単一トランザクション内で子のjob_required_skillsを先に削除してから
	// 親を削除し、孤児行が残らないことを保証する。
	DeleteByIDAndUser(ctx context.Context, id, userID string) error

	// DeleteByUserID はユーザーの全求人ターゲットを子もろとも削除する。退会処理用。
	DeleteByUserID(ctx context.Context, userID string) error

	// ListRequiredSkills は求人ターゲットの要求スキル一覧を作成順で返す。
	// 親の所有者確認は呼び出し側で済ませていること。
	ListRequiredSkills(ctx context.Context, jobTargetID string) ([]*model.RequiredSkill, error)

	// CreateRequiredSkill は要求スキルを作成する。
	// JobTargetIDは親の所有者確認を経た値を呼び出し側で設定する。
	CreateRequiredSkill(ctx context.Context, rs *model.RequiredSkill) error
}

// GoalRepository は学習目標データの永続化インターフェース。
type GoalRepository interface {
	// FindByIDAndUser は指定IDの学習目標を所有者スコープで取得する。
	// 存在しない場合も他ユーザー所有の場合もnilを返す。
	FindByIDAndUser(ctx context.Context, id, userID string) (*model.LearningGoal, error)

	// ListByUserID はユーザーの学習目標一覧を作成日時降順で返す。
	ListByUserID(ctx context.Context, userID string) ([]*model.LearningGoal, error)

	// Create は学習目標を作成する。
	Create(ctx context.Context, goal *model.LearningGoal) error

	// UpdateStatus は学習目標のstatusを所有者スコープで更新する。
	// status以外のフィールドはこの経路では変更できない。
	UpdateStatus(ctx context.Context, id, userID string, status model.GoalStatus) error

	// DeleteByIDAndUser は指定IDの学習目標を所有者スコープで削除する。
	DeleteByIDAndUser(ctx context.Context, id, userID string) error

	// DeleteByUserID はユーザーの全学習目標を削除する。退会処理用。
	DeleteByUserID(ctx context.Context, userID string) error
}

// ApplicationRepository は応募記録データの永続化インターフェース。
type ApplicationRepository interface {
	// FindByIDAndUser は指定IDの応募記録を所有者スコープで取得する。
	// 存在しない場合も他ユーザー所有の場合もnilを返す。
	FindByIDAndUser(ctx context.Context, id, userID string) (*model.JobApplication, error)

	// ListByUserID はユーザーの応募記録一覧を応募日時降順で返す。
	ListByUserID(ctx context.Context, userID string) ([]*model.JobApplication, error)

	// Create は応募記録を作成する。
	Create(ctx context.Context, app *model.JobApplication) error

	// UpdateStatus は応募記録のstatusを所有者スコープで更新する。
	// status以外のフィールドはこの経路では変更できない。
	UpdateStatus(ctx context.Context, id, userID string, status model.ApplicationStatus) error

	// DeleteByIDAndUser は指定IDの応募記録を所有者スコープで削除する。
	DeleteByIDAndUser(ctx context.Context, id, userID string) error

	// DeleteByUserID はユーザーの全応募記録を削除する。退会処理用。
	DeleteByUserID(ctx context.Context, userID string) error
}
