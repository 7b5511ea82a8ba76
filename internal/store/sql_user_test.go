package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-study-buddy/internal/config"
	"github.com/MKhiriev/go-study-buddy/internal/logger"
)

func newTestDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return newDB(conn, driver, logger.Nop()), mock, conn
}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, conn := newTestDB(t, config.DriverPostgres)
	return NewUserRepository(db, logger.Nop()), mock, conn
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "email", "password_hash", "name", "created_at", "last_login"}

func TestSQLCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := testUser("u1", "Ann@Example.com")

	mock.ExpectExec("INSERT INTO users").
		WithArgs("u1", "ann@example.com", user.PasswordHash, user.Name, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "u1" {
		t.Errorf("expected ID=u1, got %s", created.ID)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "postgres", err: pgError(pgerrcode.UniqueViolation)},
		{name: "sqlite unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}},
		{name: "sqlite primary key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			mock.ExpectExec("INSERT INTO users").WillReturnError(tt.err)

			_, err := repo.CreateUser(context.Background(), testUser("u1", "ann@example.com"))
			if !errors.Is(err, ErrEmailAlreadyExists) {
				t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
			}
		})
	}
}

func TestSQLCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), testUser("u1", "ann@example.com"))
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
	if !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestSQLFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow("u1", "ann@example.com", "hash", "Ann", now, now)

	mock.ExpectQuery("SELECT id, email").
		WithArgs("ann@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "ANN@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != "u1" {
		t.Errorf("expected id u1, got %s", found.ID)
	}
	if found.LastLogin == nil || !found.LastLogin.Equal(now) {
		t.Errorf("expected last login %v, got %v", now, found.LastLogin)
	}
}

func TestSQLFindUserByID_NullLastLogin(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(userRowColumns).
		AddRow("u1", "ann@example.com", "hash", "Ann", time.Now(), nil)

	mock.ExpectQuery("SELECT id, email").WithArgs("u1").WillReturnRows(rows)

	found, err := repo.FindUserByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.LastLogin != nil {
		t.Errorf("expected nil last login, got %v", found.LastLogin)
	}
}

func TestSQLFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, email").
		WithArgs("ann@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByEmail(context.Background(), "ann@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestSQLFindUserByEmail_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("u1")
	mock.ExpectQuery("SELECT id, email").WillReturnRows(rows)

	_, err := repo.FindUserByEmail(context.Background(), "ann@example.com")
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestSQLUpdateLastLogin(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	at := time.Now().UTC()
	mock.ExpectExec("UPDATE users SET last_login").
		WithArgs(at, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET last_login").
		WithArgs(at, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateLastLogin(context.Background(), "u1", at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.UpdateLastLogin(context.Background(), "missing", at); !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if isUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)) {
		t.Error("foreign key violation must not count as unique violation")
	}
	if isUniqueViolation(errors.New("plain")) {
		t.Error("plain error must not count as unique violation")
	}
	if isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}) {
		t.Error("not null violation must not count as unique violation")
	}
}
