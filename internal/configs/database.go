package config

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// NewDatabase opens the configured store. Unique-key violations surface as
// gorm.ErrDuplicatedKey for every driver.
func NewDatabase(driver, dsn string) (*gorm.DB, error) {
	return OpenDatabase(driver, dsn, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

func OpenDatabase(driver, dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(dsn))
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	return db, nil
}

// SQLiteDSN turns on case-sensitive LIKE so search behaves the same as on
// PostgreSQL.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_cslike") || strings.Contains(dsn, "_case_sensitive_like") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_cslike=1"
	}
	return dsn + "?_cslike=1"
}
