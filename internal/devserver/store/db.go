// Package store is the persistence layer of the development backend.
package store

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BaseModel contains common columns for all tables
type BaseModel struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate will set a UUID rather than numeric ID
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	// DSN of a MySQL database. Empty selects a private in-memory SQLite database.
	DSN string
}

// Open connects to the configured database and migrates the schema.
func Open(cfg DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var (
		db  *gorm.DB
		err error
	)
	if cfg.DSN != "" {
		db, err = gorm.Open(mysql.Open(cfg.DSN), gormCfg)
	} else {
		// Each server gets its own named shared-cache database so parallel
		// test servers do not see each other's rows.
		dsn := fmt.Sprintf("file:devserver-%s?mode=memory&cache=shared", uuid.NewString())
		db, err = gorm.Open(sqlite.Open(dsn), gormCfg)
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				return nil, dbErr
			}
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&User{}, &Appointment{}, &MedicalHistory{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
