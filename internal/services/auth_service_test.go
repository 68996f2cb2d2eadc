package services

import (
	"testing"

	"motortransport/internal/domain"
	"motortransport/internal/repositories"
	"motortransport/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return AuthService{Users: repositories.UserRepository{DB: sqlx.NewDb(db, "sqlmock")}}, mock
}

func TestAuthenticateMatchesStoredDigest(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`FROM transport_company\."user"`).
		WithArgs("dispatcher", utils.HashPassword("secret123")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role_id"}).AddRow(3, "dispatcher", 2))

	ident, err := svc.Authenticate("dispatcher", "secret123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if ident.ID != 3 || ident.Username != "dispatcher" || ident.RoleID != 2 {
		t.Fatalf("unexpected identity: %+v", ident)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAuthenticateBlankInputSkipsStorage(t *testing.T) {
	svc, mock := newAuthService(t)

	for _, pair := range [][2]string{{"", "x"}, {"user", ""}, {"  ", "  "}} {
		if _, err := svc.Authenticate(pair[0], pair[1]); !domain.IsValidation(err) {
			t.Fatalf("Authenticate(%q, %q): expected validation error, got %v", pair[0], pair[1], err)
		}
	}
	// no expectations were registered: any query would have failed the test
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("storage touched on blank input: %v", err)
	}
}

func TestAuthenticateWrongCredentials(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`FROM transport_company\."user"`).
		WithArgs("dispatcher", utils.HashPassword("wrong")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role_id"}))

	_, err := svc.Authenticate("dispatcher", "wrong")
	if !domain.IsAuth(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if err.Error() != "invalid username or password" {
		t.Fatalf("error message must not reveal which field was wrong: %q", err.Error())
	}
}

func TestAuthenticateStorageAuthFailureIsDistinct(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`FROM transport_company\."user"`).
		WillReturnError(&pq.Error{Code: "28P01"})

	_, err := svc.Authenticate("dispatcher", "secret123")
	if !domain.IsUnavailable(err) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if domain.IsAuth(err) {
		t.Fatalf("storage failure must not look like bad credentials")
	}
}

func TestRegisterPasswordMismatchNeverReachesStorage(t *testing.T) {
	svc, mock := newAuthService(t)

	_, err := svc.Register("newuser", "one", "two", "new@example.com")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("storage touched on password mismatch: %v", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc, mock := newAuthService(t)

	cases := [][4]string{
		{"", "p", "p", "a@b.c"},
		{"u", "", "", "a@b.c"},
		{"u", "p", "p", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Register(tc[0], tc[1], tc[2], tc[3]); !domain.IsValidation(err) {
			t.Fatalf("Register(%v): expected validation error, got %v", tc, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("storage touched on missing fields: %v", err)
	}
}

func TestRegisterInsertsClientRoleWithDigest(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`INSERT INTO transport_company\."user"`).
		WithArgs("newuser", utils.HashPassword("secret123"), "new@example.com", 4).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	id, err := svc.Register("newuser", "secret123", "secret123", "new@example.com")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id 11, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`INSERT INTO transport_company\."user"`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := svc.Register("taken", "secret123", "secret123", "taken@example.com")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
