package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionReplaceDeletesOldSessionsInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sessions" WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "sessions"`).
		WithArgs("tok-new", "user-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Replace("user-1", "tok-new", time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionReplaceRollsBackWhenInsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sessions" WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "sessions"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.Replace("user-1", "tok-new", time.Now().Add(24*time.Hour))
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionValidateReturnsOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	rows := sqlmock.NewRows([]string{"token", "user_id", "expires_at", "created_at"}).
		AddRow("tok-1", "user-1", time.Now().Add(time.Hour), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE token = \$1`).
		WithArgs("tok-1", 1).
		WillReturnRows(rows)

	userID, err := repo.Validate("tok-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionValidateUnknownTokenIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE token = \$1`).
		WithArgs("tok-missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"token", "user_id", "expires_at", "created_at"}))

	userID, err := repo.Validate("tok-missing")
	require.NoError(t, err)
	assert.Empty(t, userID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionValidateDeletesExpiredRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	rows := sqlmock.NewRows([]string{"token", "user_id", "expires_at", "created_at"}).
		AddRow("tok-old", "user-1", time.Now().Add(-time.Minute), time.Now().Add(-25*time.Hour))
	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE token = \$1`).
		WithArgs("tok-old", 1).
		WillReturnRows(rows)
	mock.ExpectExec(`DELETE FROM "sessions" WHERE token = \$1`).
		WithArgs("tok-old").
		WillReturnResult(sqlmock.NewResult(0, 1))

	userID, err := repo.Validate("tok-old")
	require.NoError(t, err)
	assert.Empty(t, userID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionDestroyReportIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(`DELETE FROM "sessions" WHERE token = \$1`).
		WithArgs("tok-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	removed, err := repo.DestroyReport("tok-1")
	require.NoError(t, err)
	assert.True(t, removed)

	mock.ExpectExec(`DELETE FROM "sessions" WHERE token = \$1`).
		WithArgs("tok-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	removed, err = repo.DestroyReport("tok-1")
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, mock.ExpectationsWereMet())
}
