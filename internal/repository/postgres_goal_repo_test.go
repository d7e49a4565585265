package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hitoshi/careerdesk/internal/model"
)

// PostgresGoalRepoがGoalRepositoryインターフェースを実装していることを確認
var _ GoalRepository = (*PostgresGoalRepo)(nil)

func TestPostgresGoalRepo_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresGoalRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE learning_goals SET status = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`)).
		WithArgs("goal-1", "user-1", model.GoalStatusInProgress).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "goal-1", "user-1", model.GoalStatusInProgress)
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
}

func TestPostgresGoalRepo_UpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresGoalRepo(db)

	// 他ユーザー所有の学習目標は0件更新となり未検出エラーになる
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE learning_goals`)).
		WithArgs("goal-1", "other-user", model.GoalStatusDone).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "goal-1", "other-user", model.GoalStatusDone)
	if err == nil {
		t.Error("所有者スコープ外の更新はエラーになるべき")
	}
}
