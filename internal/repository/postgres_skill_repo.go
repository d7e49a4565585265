package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/careerdesk/internal/model"
)

// PostgresSkillRepo はPostgreSQLを使用したスキルリポジトリ。
type PostgresSkillRepo struct {
	db *sql.DB
}

// NewPostgresSkillRepo はPostgresSkillRepoを生成する。
func NewPostgresSkillRepo(db *sql.DB) *PostgresSkillRepo {
	return &PostgresSkillRepo{db: db}
}

// FindByIDAndUser は指定IDのスキルを所有者スコープで取得する。
// 存在しない場合も他ユーザー所有の場合もnilを返す。
func (r *PostgresSkillRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*model.Skill, error) {
	skill := &model.Skill{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, level, category, created_at, updated_at
		 FROM skills WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&skill.ID, &skill.UserID, &skill.Name, &skill.Level, &skill.Category, &skill.CreatedAt, &skill.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("スキルの取得に失敗しました: %w", err)
	}

	return skill, nil
}

// ListByUserID はユーザーのスキル一覧を名前昇順で返す。
func (r *PostgresSkillRepo) ListByUserID(ctx context.Context, userID string) ([]*model.Skill, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, level, category, created_at, updated_at
		 FROM skills WHERE user_id = $1 ORDER BY name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("スキル一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var skills []*model.Skill
	for rows.Next() {
		skill := &model.Skill{}
		if err := rows.Scan(&skill.ID, &skill.UserID, &skill.Name, &skill.Level, &skill.Category, &skill.CreatedAt, &skill.UpdatedAt); err != nil {
			return nil, fmt.Errorf("スキル行の読み取りに失敗しました: %w", err)
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("スキル一覧の走査に失敗しました: %w", err)
	}
	return skills, nil
}

// Create はスキルを作成する。
func (r *PostgresSkillRepo) Create(ctx context.Context, skill *model.Skill) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO skills (id, user_id, name, level, category, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		skill.ID, skill.UserID, skill.Name, skill.Level, skill.Category, skill.CreatedAt, skill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("スキルの作成に失敗しました: %w", err)
	}
	return nil
}

// DeleteByIDAndUser は指定IDのスキルを所有者スコープで削除する。
func (r *PostgresSkillRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM skills WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("スキルの削除に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("削除結果の取得に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("スキルが見つかりません: %s", id)
	}
	return nil
}

// DeleteByUserID はユーザーの全スキルを削除する。
func (r *PostgresSkillRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM skills WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("ユーザーのスキル一括削除に失敗しました: %w", err)
	}
	return nil
}
