package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/careerdesk/internal/model"
)

// PostgresApplicationRepo はPostgreSQLを使用した応募記録リポジトリ。
type PostgresApplicationRepo struct {
	db *sql.DB
}

// NewPostgresApplicationRepo はPostgresApplicationRepoを生成する。
func NewPostgresApplicationRepo(db *sql.DB) *PostgresApplicationRepo {
	return &PostgresApplicationRepo{db: db}
}

// FindByIDAndUser は指定IDの応募記録を所有者スコープで取得する。
// 存在しない場合も他ユーザー所有の場合もnilを返す。
func (r *PostgresApplicationRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*model.JobApplication, error) {
	app := &model.JobApplication{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, company, role, status, applied_at, link, notes, created_at, updated_at
		 FROM job_applications WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&app.ID, &app.UserID, &app.Company, &app.Role, &app.Status, &app.AppliedAt, &app.Link, &app.Notes, &app.CreatedAt, &app.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("応募記録の取得に失敗しました: %w", err)
	}

	return app, nil
}

// ListByUserID はユーザーの応募記録一覧を応募日時降順で返す。
func (r *PostgresApplicationRepo) ListByUserID(ctx context.Context, userID string) ([]*model.JobApplication, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, company, role, status, applied_at, link, notes, created_at, updated_at
		 FROM job_applications WHERE user_id = $1 ORDER BY applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("応募記録一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var apps []*model.JobApplication
	for rows.Next() {
		app := &model.JobApplication{}
		if err := rows.Scan(&app.ID, &app.UserID, &app.Company, &app.Role, &app.Status, &app.AppliedAt, &app.Link, &app.Notes, &app.CreatedAt, &app.UpdatedAt); err != nil {
			return nil, fmt.Errorf("応募記録行の読み取りに失敗しました: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("応募記録一覧の走査に失敗しました: %w", err)
	}
	return apps, nil
}

// Create は応募記録を作成する。
func (r *PostgresApplicationRepo) Create(ctx context.Context, app *model.JobApplication) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO job_applications (id, user_id, company, role, status, applied_at, link, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		app.ID, app.UserID, app.Company, app.Role, app.Status, app.AppliedAt, app.Link, app.Notes, app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("応募記録の作成に失敗しました: %w", err)
	}
	return nil
}

// UpdateStatus は応募記録のstatusを所有者スコープで更新する。
func (r *PostgresApplicationRepo) UpdateStatus(ctx context.Context, id, userID string, status model.ApplicationStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE job_applications SET status = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, userID, status,
	)
	if err != nil {
		return fmt.Errorf("応募記録の更新に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("更新結果の取得に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("応募記録が見つかりません: %s", id)
	}
	return nil
}

// DeleteByIDAndUser は指定IDの応募記録を所有者スコープで削除する。
func (r *PostgresApplicationRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM job_applications WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("応募記録の削除に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("削除結果の取得に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("応募記録が見つかりません: %s", id)
	}
	return nil
}

// DeleteByUserID はユーザーの全応募記録を削除する。
func (r *PostgresApplicationRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM job_applications WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("ユーザーの応募記録一括削除に失敗しました: %w", err)
	}
	return nil
}
