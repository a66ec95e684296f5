package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pantryplate/backend/config"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
}

// Connect opens the GORM connection used by the application services,
// retrying briefly so the API can start alongside the database.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	const attempts = 5
	for i := 1; i <= attempts; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			log.WithFields(logrus.Fields{"host": cfg.DBHost, "attempt": i}).Info("connected to database")
			return db, nil
		}
		log.WithFields(logrus.Fields{"attempt": i, "error": err.Error()}).Warn("database connection failed, retrying")
		time.Sleep(time.Duration(i) * time.Second)
	}
	return nil, fmt.Errorf("error opening database after %d attempts: %w", attempts, err)
}

// HealthDB is a plain database/sql connection kept aside for liveness
// pings, separate from the ORM pool.
type HealthDB struct {
	*sql.DB
}

// NewHealthDB opens the liveness connection.
func NewHealthDB(cfg *config.Config) (*HealthDB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}
	return &HealthDB{db}, nil
}

// HealthCheck checks if the database is accessible
func (db *HealthDB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}
