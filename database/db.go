package database

import (
	"fmt"
	"os"

	"freightdesk/logger"
	bookingModel "freightdesk/models/booking"
	kycModel "freightdesk/models/kyc"
	logModel "freightdesk/models/log"
	quotationModel "freightdesk/models/quotation"
	userModel "freightdesk/models/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the PostgreSQL connection, migrates the schema and creates
// supporting indexes.
func InitDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(db); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(db); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return db, nil
}

// autoMigrate runs auto migration for all models, staged so tables with
// foreign keys come after the tables they reference.
func autoMigrate(db *gorm.DB) error {
	stage1Models := []interface{}{
		&userModel.User{},
		&kycModel.KYCRecord{},
		&quotationModel.Quotation{},
		&bookingModel.Booking{},
	}

	for _, model := range stage1Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	stage2Models := []interface{}{
		&bookingModel.BookingStatusEvent{},
		&logModel.Log{},
	}

	for _, model := range stage2Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for the frequent lookups.
func createIndexes(db *gorm.DB) error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_job_number ON bookings(job_number)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_kyc_details_customer_name ON kyc_details(customer_name)",
		"CREATE INDEX IF NOT EXISTS idx_quotations_email ON quotations(email)",
		"CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
