package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/careerdesk/internal/model"
)

// PostgresJobTargetRepo はPostgreSQLを使用した求人ターゲットリポジトリ。
// 要求スキル（job_required_skills）の永続化も担当する。
type PostgresJobTargetRepo struct {
	db *sql.DB
}

// NewPostgresJobTargetRepo はPostgresJobTargetRepoを生成する。
func NewPostgresJobTargetRepo(db *sql.DB) *PostgresJobTargetRepo {
	return &PostgresJobTargetRepo{db: db}
}

// FindByIDAndUser は指定IDの求人ターゲットを所有者スコープで取得する。
// 存在しない場合も他ユーザー所有の場合もnilを返す。
func (r *PostgresJobTargetRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*model.JobTarget, error) {
	job := &model.JobTarget{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, company, description, seniority, created_at, updated_at
		 FROM job_targets WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&job.ID, &job.UserID, &job.Title, &job.Company, &job.Description, &job.Seniority, &job.CreatedAt, &job.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("求人ターゲットの取得に失敗しました: %w", err)
	}

	return job, nil
}

// ListByUserID はユーザーの求人ターゲット一覧を作成日時降順で返す。
func (r *PostgresJobTargetRepo) ListByUserID(ctx context.Context, userID string) ([]*model.JobTarget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, company, description, seniority, created_at, updated_at
		 FROM job_targets WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("求人ターゲット一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var jobs []*model.JobTarget
	for rows.Next() {
		job := &model.JobTarget{}
		if err := rows.Scan(&job.ID, &job.UserID, &job.Title, &job.Company, &job.Description, &job.Seniority, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, fmt.Errorf("求人ターゲット行の読み取りに失敗しました: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("求人ターゲット一覧の走査に失敗しました: %w", err)
	}
	return jobs, nil
}

// Create は求人ターゲットを作成する。
func (r *PostgresJobTargetRepo) Create(ctx context.Context, job *model.JobTarget) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO job_targets (id, user_id, title, company, description, seniority, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		job.ID, job.UserID, job.Title, job.Company, job.Description, job.Seniority, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("求人ターゲットの作成に失敗しました: %w", err)
	}
	return nil
}

// DeleteByIDAndUser は求人ターゲットを所有者スコープで削除する。
// 子のjob_required_skillsを同一トランザクション内で先に削除するため、
// 途中でクラッシュしても孤児行は残らない。親の削除が0件だった場合は
// ロールバックして未検出エラーを返す。
func (r *PostgresJobTargetRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクションの開始に失敗しました: %w", err)
	}
	defer tx.Rollback()

	// 子の削除も所有者スコープのサブクエリで行う。
	// 他ユーザーの求人IDを渡された場合は0件削除となり、親の削除で未検出が確定する。
	_, err = tx.ExecContext(ctx,
		`DELETE FROM job_required_skills
		 WHERE job_target_id IN (SELECT id FROM job_targets WHERE id = $1 AND user_id = $2)`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("要求スキルの削除に失敗しました: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM job_targets WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("求人ターゲットの削除に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("削除結果の取得に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("求人ターゲットが見つかりません: %s", id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("トランザクションのコミットに失敗しました: %w", err)
	}
	return nil
}

// DeleteByUserID はユーザーの全求人ターゲットを子もろとも削除する。
func (r *PostgresJobTargetRepo) DeleteByUserID(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクションの開始に失敗しました: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM job_required_skills
		 WHERE job_target_id IN (SELECT id FROM job_targets WHERE user_id = $1)`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("要求スキルの一括削除に失敗しました: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM job_targets WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("求人ターゲットの一括削除に失敗しました: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("トランザクションのコミットに失敗しました: %w", err)
	}
	return nil
}

// ListRequiredSkills は求人ターゲットの要求スキル一覧を作成順で返す。
func (r *PostgresJobTargetRepo) ListRequiredSkills(ctx context.Context, jobTargetID string) ([]*model.RequiredSkill, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, job_target_id, name, importance, created_at
		 FROM job_required_skills WHERE job_target_id = $1 ORDER BY created_at ASC`,
		jobTargetID,
	)
	if err != nil {
		return nil, fmt.Errorf("要求スキル一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var skills []*model.RequiredSkill
	for rows.Next() {
		rs := &model.RequiredSkill{}
		if err := rows.Scan(&rs.ID, &rs.JobTargetID, &rs.Name, &rs.Importance, &rs.CreatedAt); err != nil {
			return nil, fmt.Errorf("要求スキル行の読み取りに失敗しました: %w", err)
		}
		skills = append(skills, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("要求スキル一覧の走査に失敗しました: %w", err)
	}
	return skills, nil
}

// CreateRequiredSkill は要求スキルを作成する。
func (r *PostgresJobTargetRepo) CreateRequiredSkill(ctx context.Context, rs *model.RequiredSkill) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO job_required_skills (id, job_target_id, name, importance, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		rs.ID, rs.JobTargetID, rs.Name, rs.Importance, rs.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("要求スキルの作成に失敗しました: %w", err)
	}
	return nil
}
