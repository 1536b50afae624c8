package database

import (
	"errors"
	"fmt"

	"catalog-service/internal/model"
	"catalog-service/pkg/config"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB initializes the database connection with configuration, runs
// migrations and seeds the bootstrap administrator.
func InitDB(cfg *config.Config) error {
	var err error

	// Create DSN string
	dsn := cfg.DB.GetDSN()

	// Configure Postgres options
	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	// Open connection
	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.DB.LogLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get generic database object SQL
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Set connection pool settings from config
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	// Run migrations. Users first so the audit foreign keys resolve.
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Brand{},
		&model.Supplier{},
		&model.Product{},
	); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	if err := seedAdmin(cfg); err != nil {
		return fmt.Errorf("failed to seed administrator: %w", err)
	}

	return nil
}

// seedAdmin creates the bootstrap administrator account when the users table
// is empty. It is the only seed data the service requires.
func seedAdmin(cfg *config.Config) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Name:     cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Password: string(hash),
		IsAdmin:  true,
	}
	return db.Create(&admin).Error
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	if db == nil {
		panic(errors.New("database not initialized"))
	}
	return db
}
