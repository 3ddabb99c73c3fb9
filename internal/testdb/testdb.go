// Package testdb hands out isolated, fully migrated in-memory SQLite
// databases for tests.
package testdb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	config "task-manager-api.com/task-manager-api/internal/configs"
	"task-manager-api.com/task-manager-api/internal/migrations"
)

// New opens a private database that lives as long as the test.
func New(t testing.TB) *gorm.DB {
	return NewWithClock(t, nil)
}

// NewWithClock lets a test control the timestamps gorm writes.
func NewWithClock(t testing.TB, now func() time.Time) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := config.OpenDatabase(config.DriverSQLite, dsn, &gorm.Config{
		TranslateError: true,
		NowFunc:        now,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if _, err := migrations.Up(context.Background(), config.DriverSQLite, sqlDB); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

// Clock is a manually advanced time source.
type Clock struct {
	current time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{current: start.UTC()}
}

func (c *Clock) Now() time.Time {
	return c.current
}

func (c *Clock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
