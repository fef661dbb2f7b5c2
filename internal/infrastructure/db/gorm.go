package db

import (
	"fmt"
	"time"

	"loanledger-backend/internal/config"
	"loanledger-backend/internal/domain/ledger"
	"loanledger-backend/internal/domain/loan"
	"loanledger-backend/internal/domain/offer"
	"loanledger-backend/internal/domain/payment"
	"loanledger-backend/internal/domain/user"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured backend and verifies the connection.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return OpenDialector(sqlite.Open(cfg.SQLitePath))
	case "mysql":
		return OpenDialector(mysql.Open(cfg.MySQLDSN()))
	default:
		return nil, fmt.Errorf("unknown DB driver %q", cfg.DBDriver)
	}
}

// OpenDialector opens a gorm session over any dialector, applies the
// pool settings and pings.
func OpenDialector(dial gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the demo store schema. There is no
// versioned migration history; the schema follows the entity structs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&loan.Loan{},
		&offer.Offer{},
		&payment.Payment{},
		&ledger.LenderBalance{},
		&ledger.AuditLog{},
	)
}
