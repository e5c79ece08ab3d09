package sqlpager

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type dialectorFactory func(conn *sql.DB) gorm.Dialector

var _testDialectors = map[string]dialectorFactory{
	"mysql": func(conn *sql.DB) gorm.Dialector {
		return mysql.New(mysql.Config{Conn: conn, SkipInitializeWithVersion: true})
	},
	"postgres": func(conn *sql.DB) gorm.Dialector {
		return postgres.New(postgres.Config{Conn: conn})
	},
}

// newGORMMock opens a gorm session for the dialect on top of sqlmock. The
// mock is checked for unmet expectations when the test ends.
func newGORMMock(t *testing.T, dialect string) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(_testDialectors[dialect](conn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
	})

	return db, mock
}
