package database

import (
	"path/filepath"
	"testing"
	"time"

	c "github.com/aviodesk/charterops/internal/interfaces/config"
	. "github.com/aviodesk/charterops/internal/interfaces/operation"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testQueryTimeout = 5 * time.Second

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrator().AutoMigrate(&Flight{}, &MaintenanceTask{}, &CrewMember{}, &User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestUserOperation(t *testing.T) *UserOperation {
	t.Helper()
	return NewUserOperation(newTestDB(t), testQueryTimeout, &c.GeneralConfig{BcryptCost: 4})
}
