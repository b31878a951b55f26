// api/db/db.go
package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	"github.com/atlas-hrms/atlas/api/config"
	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/model"
)

var DB *gorm.DB

// newGormConfig builds the session config shared by InitPostgres. TranslateError
// turns driver unique-violation errors into gorm.ErrDuplicatedKey, which the
// DAOs map onto the conflict sentinels.
func newGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         gorm_logger.Default.LogMode(gorm_logger.Warn),
		TranslateError: true,
	}
}

func InitPostgres() error {
	dsn := config.GetString("database.dsn")

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), newGormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)

	if err := DB.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Permission{},
		&model.Menu{},
		&model.Department{},
		&model.LeaveApplication{},
		&model.AttendanceRecord{},
		&model.Document{},
		&model.Payslip{},
		&model.Requisition{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return nil
}

func ClosePostgres() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("Error accessing underlying sql.DB on close")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing Postgres connection")
	}
}
