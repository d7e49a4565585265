package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

// PostgresUserRepoがUserRepositoryインターフェースを実装していることを確認
var _ UserRepository = (*PostgresUserRepo)(nil)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmockの初期化に失敗: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func userColumns() []string {
	return []string{"id", "email", "password_hash", "name", "created_at", "updated_at"}
}

func TestPostgresUserRepo_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUserRepo(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, name, created_at, updated_at`)).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("user-1", "taro@example.com", "hash", "太郎", now, now))

	user, err := repo.FindByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if user == nil {
		t.Fatal("ユーザーが返されるべき")
	}
	if user.Email != "taro@example.com" {
		t.Errorf("Email = %q, want %q", user.Email, "taro@example.com")
	}
}

func TestPostgresUserRepo_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, name, created_at, updated_at`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	// 未検出はエラーではなくnilで返る
	user, err := repo.FindByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("未検出はエラーにならないべき: %v", err)
	}
	if user != nil {
		t.Errorf("未検出時はnilが返るべき: %+v", user)
	}
}

func TestPostgresUserRepo_FindByEmail_CaseInsensitive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUserRepo(db)
	now := time.Now()

	// LOWER比較のクエリが発行されることを確認
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE LOWER(email) = LOWER($1)`)).
		WithArgs("Taro@Example.COM").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("user-1", "taro@example.com", "hash", "太郎", now, now))

	user, err := repo.FindByEmail(context.Background(), "Taro@Example.COM")
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if user == nil {
		t.Fatal("大文字小文字が違ってもユーザーが見つかるべき")
	}
}

func TestPostgresUserRepo_DeleteByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUserRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByID(context.Background(), "missing")
	if err == nil {
		t.Error("0件削除はエラーになるべき")
	}
}
