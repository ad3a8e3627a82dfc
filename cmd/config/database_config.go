package config

import (
	"Food-Recipes-Backend/internal/utils"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// Dialectors returns the primary dialector and any read replicas.
func Dialectors(cfg *utils.Config) (gorm.Dialector, []gorm.Dialector, error) {
	switch cfg.DBDriver {
	case DriverPostgres, "":
		replicas := make([]gorm.Dialector, 0, len(cfg.DBReplicas))
		for _, dsn := range cfg.DBReplicas {
			replicas = append(replicas, postgres.Open(dsn))
		}
		return postgres.Open(cfg.PostgresDSN()), replicas, nil
	case DriverSqlite:
		return sqlite.Open(SqliteDSN(cfg.SqlitePath)), nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// SqliteDSN turns on foreign key enforcement, which cascading deletes rely on.
func SqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") || strings.Contains(path, "_fk") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func ConnectDB(cfg *utils.Config) (*gorm.DB, error) {
	primary, replicas, err := Dialectors(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Warn
	if cfg.DBLogQueries {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(primary, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger: gormlogger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if len(replicas) > 0 {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}).
			SetMaxOpenConns(cfg.DBMaxConns).
			SetMaxIdleConns(cfg.DBIdleConns))
		if err != nil {
			return nil, fmt.Errorf("register read replicas: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == DriverSqlite {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.DBMaxConns)
		sqlDB.SetMaxIdleConns(cfg.DBIdleConns)
	}

	return db, nil
}

// CloseDB releases the connection pool.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
