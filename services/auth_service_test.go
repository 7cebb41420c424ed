package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/models"
	"github.com/sitedock/sitedock/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	tokens := NewTokenService(testSecret, repositories.NewSessionRepository(db))
	return NewAuthService(db, tokens), mock
}

func userRows(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "created_at", "updated_at"}).
		AddRow("user-1", "Ada Lovelace", "ada@example.com", string(hash), "user", time.Now(), time.Now())
}

func TestLoginSucceedsWithMatchingPassword(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(userRows(t, "right"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sessions" WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "sessions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	response, err := svc.Login(dto.LoginRequest{Email: "ada@example.com", Password: "right"})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "ada@example.com", response.User.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginErrorIsIdenticalForUnknownUserAndWrongPassword(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}))
	_, unknownErr := svc.Login(dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(userRows(t, "right"))
	_, wrongErr := svc.Login(dto.LoginRequest{Email: "ada@example.com", Password: "wrong"})

	var unknownAPI, wrongAPI *models.APIError
	require.ErrorAs(t, unknownErr, &unknownAPI)
	require.ErrorAs(t, wrongErr, &wrongAPI)
	assert.Equal(t, 401, unknownAPI.Status)
	assert.Equal(t, 401, wrongAPI.Status)
	assert.Equal(t, unknownAPI.Message, wrongAPI.Message)
	assert.Equal(t, "Invalid email or password", wrongAPI.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginSurvivesLastLoginStampFailure(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(userRows(t, "right"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sessions" WHERE user_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "sessions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnError(assert.AnError)

	response, err := svc.Login(dto.LoginRequest{Email: "ada@example.com", Password: "right"})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(gorm.ErrDuplicatedKey)

	_, err := svc.Signup(dto.SignupRequest{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Password: "secret1",
	})
	var apiErr *models.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignupRejectsMissingInviteSite(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "sites" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := svc.Signup(dto.SignupRequest{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Password: "secret1",
		InviteToken: "tok", SiteID: "site-gone",
	})
	var apiErr *models.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignupRedeemsInvitationIntoSiteAccess(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "sites" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-2"))
	mock.ExpectQuery(`SELECT \* FROM "site_invitations" WHERE token = \$1 AND used_at IS NULL AND expires_at > \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "site_id", "token", "created_by", "expires_at"}).
			AddRow("inv-1", "site-1", "tok-1", "user-1", time.Now().Add(time.Hour)))
	mock.ExpectQuery(`INSERT INTO "site_accesses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("acc-1"))
	mock.ExpectExec(`UPDATE "site_invitations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	response, err := svc.Signup(dto.SignupRequest{
		FirstName: "Grace", LastName: "Hopper",
		Email: "grace@example.com", Password: "secret1",
		InviteToken: "tok-1", SiteID: "site-1",
	})
	require.NoError(t, err)
	require.NotNil(t, response.SiteInvitation)
	assert.Equal(t, "site-1", response.SiteInvitation.SiteID)
	assert.NotNil(t, response.SiteInvitation.UsedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignupSucceedsWhenInvitationIsStale(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "sites" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-2"))
	mock.ExpectQuery(`SELECT \* FROM "site_invitations" WHERE token = \$1 AND used_at IS NULL AND expires_at > \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "site_id", "token", "created_by", "expires_at"}))

	response, err := svc.Signup(dto.SignupRequest{
		FirstName: "Grace", LastName: "Hopper",
		Email: "grace@example.com", Password: "secret1",
		InviteToken: "tok-used", SiteID: "site-1",
	})
	require.NoError(t, err)
	assert.Nil(t, response.SiteInvitation)
	require.NoError(t, mock.ExpectationsWereMet())
}
