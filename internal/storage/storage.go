package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stephenafamo/bob"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/config"
)

type Storage struct {
	sqlDB  *sql.DB
	db     bob.DB
	Reader *Reader
}

// ConnectionString builds the postgres URL for cfg.
func ConnectionString(cfg *config.Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.PostgresUsername, cfg.PostgresPassword),
		Host:     net.JoinHostPort(cfg.PostgresAddress, cfg.PostgresPort),
		Path:     cfg.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func NewStorage(cfg *config.Config) (*Storage, error) {
	db, err := sql.Open("pgx", ConnectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened database.
func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		sqlDB:  db,
		db:     bobDB,
		Reader: NewReader(bobDB),
	}
}

// Write begins a database transaction and returns a Writer bound to it. The
// caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.sqlDB.Close()
}
