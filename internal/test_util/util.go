package test_util

import (
	"net"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func GetDBConnection(dbFile string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})

	if err != nil {
		return nil, err
	}

	return db, err
}

func Migrate(db *gorm.DB, model interface{}) error {
	return db.AutoMigrate(model)
}

// ServerHostPort splits the listening address of a test server
func ServerHostPort(t *testing.T, server *httptest.Server) (string, int) {
	host, portStr, err := net.SplitHostPort(server.Listener.Addr().String())

	require.NoError(t, err)

	port, err := strconv.Atoi(portStr)

	require.NoError(t, err)

	return host, port
}
