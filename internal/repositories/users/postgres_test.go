package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	insertQuery = `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*password\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id\s*$`
	existsQuery = `(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s+AND\s+password\s*=\s*\$2\s*$`
)

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("alice", "secret").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	got, err := repo.Create(context.Background(), &models.User{Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPostgresCreate_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("alice", "secret").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.User{Username: "alice", Password: "secret"})
	if !errors.Is(err, common.ErrDuplicateUsername) {
		t.Fatalf("want ErrDuplicateUsername, got %v", err)
	}
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("alice", "secret").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Username: "alice", Password: "secret"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(existsQuery).
		WithArgs("alice", "secret").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(existsQuery).
		WithArgs("alice", "wrong").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.Exists(context.Background(), "alice", "secret")
	if err != nil || !ok {
		t.Fatalf("Exists(match) = %v, %v", ok, err)
	}
	ok, err = repo.Exists(context.Background(), "alice", "wrong")
	if err != nil || ok {
		t.Fatalf("Exists(mismatch) = %v, %v", ok, err)
	}
}

func TestPostgresExists_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(existsQuery).
		WithArgs("alice", "secret").
		WillReturnError(errors.New("db err"))

	_, err := repo.Exists(context.Background(), "alice", "secret")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
