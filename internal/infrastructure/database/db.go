package database

import (
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/config"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/db"
)

type DBManager struct {
	Db *sql.DB
}

func New(cfg *config.PostgresConfig) (*DBManager, error) {
	DBDSN := db.GetDBDSN(cfg)
	Db, err := sql.Open("postgres", DBDSN)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		Db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		Db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if err := Db.Ping(); err != nil {
		return nil, err
	}

	if err := Migrate(Db); err != nil {
		return nil, err
	}

	return &DBManager{
		Db: Db,
	}, nil
}

func (dm *DBManager) ShutDown() {
	if dm.Db != nil {
		dm.Db.Close()
	}
}
