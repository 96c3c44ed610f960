package config

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/HarshCode115/AapdaRakshak/models"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// dbConnected is process-wide connection state. It is set once at startup
// and read by handlers and the expiry sweep; the sweep must no-op while
// the database is unreachable instead of crashing the process.
var dbConnected atomic.Bool

func IsConnected() bool {
	return dbConnected.Load()
}

// SetConnected is exposed for tests that run services against an
// in-memory database.
func SetConnected(v bool) {
	dbConnected.Store(v)
}

// InitDB loads .env, opens the Postgres connection and runs migrations.
// A connection failure is not fatal: the app still serves the static feed
// endpoints and reports its state on /health.
func InitDB(log *logrus.Logger) {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.WithError(err).Warn("Failed to connect to database, running without persistence")
		dbConnected.Store(false)
		return
	}

	if err := Migrate(db); err != nil {
		log.WithError(err).Warn("AutoMigrate failed, running without persistence")
		dbConnected.Store(false)
		return
	}

	DB = db
	dbConnected.Store(true)
	log.Info("Connected to database")
}

// Migrate runs schema migrations. Split out so tests can run it against
// an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Alert{},
		&models.Notification{},
		&models.Volunteer{},
		&models.VolunteerDocument{},
		&models.Fund{},
	)
}
