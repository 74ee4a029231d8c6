package database

import (
	"fmt"
	"strings"
	"time"

	"trainit-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqliteBusyTimeout bounds how long a SQLite connection waits on another writer
const sqliteBusyTimeout = 5 * time.Second

// Options tunes the connection pool, the GORM log level and migration
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Models lists every table in migration order
func Models() []interface{} {
	return []interface{}{
		&models.Organization{},
		&models.User{},
		&models.Animal{},
		&models.TrainingPlan{},
		&models.PlanStep{},
		&models.StepSessionNote{},
		&models.TimeLog{},
	}
}

// Initialize opens the database named by databaseURL and creates the schema from GORM models.
// postgres:// and postgresql:// URLs use Postgres; anything else is a SQLite path or DSN,
// optionally prefixed with sqlite:///.
func Initialize(databaseURL string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	dialector, driver := Dialector(databaseURL)

	// Open DB
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := db.AutoMigrate(Models()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

// Dialector picks the GORM driver for databaseURL and returns it with the driver name
func Dialector(databaseURL string) (gorm.Dialector, string) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return postgres.Open(databaseURL), "postgres"
	}
	return sqlite.Open(SQLiteDSN(databaseURL)), "sqlite"
}

// SQLiteDSN turns a sqlite:/// URL into a go-sqlite3 DSN with foreign keys enabled.
// Writers wait up to sqliteBusyTimeout for a lock instead of failing with "database is locked".
func SQLiteDSN(databaseURL string) string {
	dsn := databaseURL
	switch {
	case strings.HasPrefix(dsn, "sqlite:///"):
		dsn = strings.TrimPrefix(dsn, "sqlite:///")
	case strings.HasPrefix(dsn, "sqlite://"):
		dsn = strings.TrimPrefix(dsn, "sqlite://")
	}

	dsn = withSQLiteParam(dsn, "_foreign_keys=1", "_foreign_keys=", "_fk=")
	return withSQLiteParam(dsn, fmt.Sprintf("_busy_timeout=%d", sqliteBusyTimeout.Milliseconds()), "_busy_timeout=", "_timeout=")
}

// withSQLiteParam appends param to dsn unless one of the given keys is already set
func withSQLiteParam(dsn, param string, keys ...string) string {
	for _, key := range keys {
		if strings.Contains(dsn, key) {
			return dsn
		}
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}

// Ping checks that the underlying connection pool can reach the database
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Ping()
}
