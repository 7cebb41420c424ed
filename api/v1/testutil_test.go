package v1

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

// newMockDB opens a GORM handle over a sqlmock connection so handler tests
// can drive the full stack without a live database.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		// Keep single-statement writes out of implicit transactions so the
		// expectations only see the statements the services issue.
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

// newTestServer wires the complete route table over a mocked database.
func newTestServer(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	db, mock := newMockDB(t)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api"), db)
	return router, mock
}
