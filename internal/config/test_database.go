package config

import (
	"testing"

	"gorm.io/gorm"
)

// SetupTestDB points AppConfig and DB at a migrated in-memory sqlite
// database and a temporary upload directory for the duration of t.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	AppConfig = &Config{
		DBDriver:      "sqlite",
		DBPath:        "file::memory:",
		UploadDir:     t.TempDir(),
		SessionSecret: "test-secret",
	}

	db, err := OpenDB(AppConfig)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	DB = db

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err != nil {
			t.Errorf("Failed to get underlying *sql.DB: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			t.Errorf("Failed to close database connection: %v", err)
		}
	})
	return db
}
