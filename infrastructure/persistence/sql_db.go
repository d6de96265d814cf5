package persistence

import (
	"database/sql"
	"fmt"
	"time"

	"trending-videos/infrastructure/configuration"

	_ "github.com/lib/pq"
	_ "github.com/microsoft/go-mssqldb"
)

const (
	DriverPostgres  = "postgres"
	DriverSQLServer = "sqlserver"
)

// NewSQLDB opens and pings the database selected by cfg.Driver.
func NewSQLDB(cfg configuration.Database) (*sql.DB, error) {
	switch cfg.Driver {
	case DriverPostgres, DriverSQLServer:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
