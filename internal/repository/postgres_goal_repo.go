package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/careerdesk/internal/model"
)

// PostgresGoalRepo はPostgreSQLを使用した学習目標リポジトリ。
type PostgresGoalRepo struct {
	db *sql.DB
}

// NewPostgresGoalRepo はPostgresGoalRepoを生成する。
func NewPostgresGoalRepo(db *sql.DB) *PostgresGoalRepo {
	return &PostgresGoalRepo{db: db}
}

// FindByIDAndUser は指定IDの学習目標を所有者スコープで取得する。
// 存在しない場合も他ユーザー所有の場合もnilを返す。
func (r *PostgresGoalRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*model.LearningGoal, error) {
	goal := &model.LearningGoal{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, description, status, created_at, updated_at
		 FROM learning_goals WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&goal.ID, &goal.UserID, &goal.Title, &goal.Description, &goal.Status, &goal.CreatedAt, &goal.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("学習目標の取得に失敗しました: %w", err)
	}

	return goal, nil
}

// ListByUserID はユーザーの学習目標一覧を作成日時降順で返す。
func (r *PostgresGoalRepo) ListByUserID(ctx context.Context, userID string) ([]*model.LearningGoal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, description, status, created_at, updated_at
		 FROM learning_goals WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("学習目標一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var goals []*model.LearningGoal
	for rows.Next() {
		goal := &model.LearningGoal{}
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.Title, &goal.Description, &goal.Status, &goal.CreatedAt, &goal.UpdatedAt); err != nil {
			return nil, fmt.Errorf("学習目標行の読み取りに失敗しました: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("学習目標一覧の走査に失敗しました: %w", err)
	}
	return goals, nil
}

// Create は学習目標を作成する。
func (r *PostgresGoalRepo) Create(ctx context.Context, goal *model.LearningGoal) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO learning_goals (id, user_id, title, description, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		goal.ID, goal.UserID, goal.Title, goal.Description, goal.Status, goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("学習目標の作成に失敗しました: %w", err)
	}
	return nil
}

// UpdateStatus は学習目標のstatusを所有者スコープで更新する。
func (r *PostgresGoalRepo) UpdateStatus(ctx context.Context, id, userID string, status model.GoalStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE learning_goals SET status = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, userID, status,
	)
	if err != nil {
		return fmt.Errorf("学習目標の更新に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("更新結果の取得に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("学習目標が見つかりません: %s", id)
	}
	return nil
}

// DeleteByIDAndUser は指定IDの学習目標を所有者スコープで削除する。
func (r *PostgresGoalRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM learning_goals WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("学習目標の削除に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("削除結果の取得に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("学習目標が見つかりません: %s", id)
	}
	return nil
}

// DeleteByUserID はユーザーの全学習目標を削除する。
func (r *PostgresGoalRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM learning_goals WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("ユーザーの学習目標一括削除に失敗しました: %w", err)
	}
	return nil
}
