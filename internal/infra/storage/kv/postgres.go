package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

const tableName = "kv_store"

const createTableQuery = `CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresStore хранилище поверх таблицы kv_store
type PostgresStore struct {
	db DBExecutor
}

// NewPostgresStore создает хранилище поверх PostgreSQL
func NewPostgresStore(db DBExecutor) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema создает таблицу kv_store, если её нет
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Get возвращает значение по ключу
func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := psqlbuilder.Select("value").
		From(tableName).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - scan value for key=%s: %v", ErrScanRow, key, err)
	}

	return value, nil
}

// Set сохраняет значение по ключу (upsert)
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert for key=%s: %v", ErrExecQuery, key, err)
	}

	return nil
}

// Remove удаляет ключ
func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Remove - execute delete for key=%s: %v", ErrExecQuery, key, err)
	}

	return nil
}
