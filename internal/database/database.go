// Package database opens and migrates the local SQLite store.
package database

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "habitstore/internal/errors"
	"habitstore/internal/logger"
	"habitstore/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// allModels is the list of GORM models migrated on open.
var allModels = []interface{}{
	&models.Category{},
	&models.Tracker{},
	&models.ScheduleEntry{},
	&models.CompletionRecord{},
}

// Open opens (creating if necessary) the SQLite database at dsn and brings
// the schema up to date. On failure it returns ErrStorageUnavailable; the
// caller is expected to fall back to the null store rather than abort.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "habitstore.db"
	}

	if err := ensureDir(dsn); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Get().Errorw("failed to open database", "dsn", dsn, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	// Foreign keys are off by default in SQLite; cascade deletes need them.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		logger.Get().Errorw("failed to migrate database", "error", err)
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	return db, nil
}

// ensureDir creates the parent directory for a file-backed DSN. In-memory
// DSNs are left alone.
func ensureDir(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
