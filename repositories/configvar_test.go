package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sitedock/sitedock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConfigVarUpsertCreatesWhenAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConfigVarRepository(db)

	mock.ExpectQuery(`INSERT INTO "config_vars"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("cv-1"))

	v := models.ConfigVar{SiteID: "site-1", Key: "NODE_ENV", Value: "production", Environment: "production", CreatedBy: "user-1"}
	created, err := repo.Upsert(&v)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "cv-1", v.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigVarUpsertFallsBackToUpdateOnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConfigVarRepository(db)

	createdAt := time.Now().Add(-time.Hour)
	mock.ExpectQuery(`INSERT INTO "config_vars"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectExec(`UPDATE "config_vars" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "config_vars" WHERE site_id = \$1 AND key = \$2 AND environment = \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "site_id", "key", "value", "is_sensitive", "environment", "created_by", "created_at", "updated_at"}).
			AddRow("cv-1", "site-1", "NODE_ENV", "staging", false, "production", "user-1", createdAt, time.Now()))

	v := models.ConfigVar{SiteID: "site-1", Key: "NODE_ENV", Value: "staging", Environment: "production", CreatedBy: "user-1"}
	created, err := repo.Upsert(&v)
	require.NoError(t, err)
	assert.False(t, created)

	// The caller sees the stored row, not the leftovers of the rejected
	// insert.
	assert.Equal(t, "cv-1", v.ID)
	assert.Equal(t, "staging", v.Value)
	assert.WithinDuration(t, createdAt, v.CreatedAt, time.Second)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigVarDeleteReportsMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConfigVarRepository(db)

	mock.ExpectExec(`DELETE FROM "config_vars" WHERE site_id = \$1 AND key = \$2 AND environment = \$3`).
		WithArgs("site-1", "GONE", "production").
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Delete("site-1", "GONE", "production")
	require.NoError(t, err)
	assert.False(t, removed)
	require.NoError(t, mock.ExpectationsWereMet())
}
