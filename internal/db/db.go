package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"facility-reservation-backend/config"
	"facility-reservation-backend/internal/model"
)

// Init initializes the database connection and runs migrations.
func Init(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	log.Println("Running database migrations...")
	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database initialization complete.")
	return db, nil
}

// Migrate runs the schema migration and the constraint DDL. It is shared by
// production startup and the sqlite-backed tests so both enforce the same
// slot-uniqueness invariant.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Resource{},
		&model.Reservation{},
		&model.HistoryEntry{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	if err := applyReservationDDL(db); err != nil {
		return err
	}
	return nil
}

// applyReservationDDL creates the indexes AutoMigrate cannot express. The
// partial unique index is the core invariant: at most one reservation with an
// active status may hold a given resource/date/time triple. An application
// pre-check alone cannot close the race between two concurrent inserts; the
// database must reject the loser.
func applyReservationDDL(db *gorm.DB) error {
	ddls := []string{
		// Slot occupancy guard, restricted to active statuses so cancelled
		// and completed rows free the slot without being deleted.
		"CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_slot ON reservations " +
			"(resource_id, date_label, time_label) " +
			"WHERE status IN ('confirmed','checked_in');",

		// Availability reads: all active rows for one resource/date.
		"CREATE INDEX IF NOT EXISTS idx_reservations_resource_date ON reservations " +
			"(resource_id, date_label, status);",

		// History display: a reservation's entries in write order.
		"CREATE INDEX IF NOT EXISTS idx_history_reservation_created ON history_entries " +
			"(reservation_id, created_at);",
	}

	for _, ddl := range ddls {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("DDL failed on %q: %w", ddl, err)
		}
	}
	return nil
}
