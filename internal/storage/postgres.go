package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type PostgresStorage struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
}

func NewPostgresStorage(ctx context.Context, dsn string, log *logrus.Logger) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	storage := &PostgresStorage{pool: pool, log: log}
	if err := storage.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

func (s *PostgresStorage) runMigrations(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS client_state (
			key VARCHAR(255) PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (s *PostgresStorage) Close() {
	s.pool.Close()
}

func (s *PostgresStorage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.pool.QueryRow(ctx, "SELECT value FROM client_state WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *PostgresStorage) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO client_state (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, time.Now())
	return err
}

func (s *PostgresStorage) Delete(ctx context.Context, key string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM client_state WHERE key = $1", key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		s.log.Debugf("state key %s was already absent", key)
	}
	return nil
}
