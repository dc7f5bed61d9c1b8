// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

// Storages groups the server repositories of one backend.
type Storages struct {
	AccountRepository      AccountRepository
	PendingResetRepository PendingResetRepository
	PostRepository         PostRepository
	UpdateRepository       UpdateRepository

	retryable func(error) bool
	close     func() error
}

// NewStorages connects to the backend selected by the DSN scheme, prepares
// its schema and builds the repositories on top of it.
//
//   - postgres:// and postgresql:// run the goose migrations.
//   - mongodb:// and mongodb+srv:// create the collection indexes.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	switch {
	case isPostgresDSN(cfg.DB.DSN):
		return newPostgresStorages(ctx, cfg.DB, logger)
	case isMongoDSN(cfg.DB.DSN):
		return newMongoStorages(ctx, cfg.DB, logger)
	default:
		return nil, ErrUnsupportedDSN
	}
}

func newPostgresStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AccountRepository:      NewAccountRepository(db, logger),
		PendingResetRepository: NewPendingResetRepository(db, logger),
		PostRepository:         NewPostRepository(db, logger),
		UpdateRepository:       NewUpdateRepository(db, logger),
		retryable:              db.IsRetryable,
		close:                  db.Close,
	}, nil
}

func newMongoStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectMongo(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("mongodb connection error: %w", err)
	}

	if err = db.EnsureIndexes(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		AccountRepository:      NewMongoAccountRepository(db, logger),
		PendingResetRepository: NewMongoPendingResetRepository(db, logger),
		PostRepository:         NewMongoPostRepository(db, logger),
		UpdateRepository:       NewMongoUpdateRepository(db, logger),
		retryable:              isRetryableMongoError,
		close:                  db.Close,
	}, nil
}

// IsRetryable reports whether err is a transient backend failure.
func (s *Storages) IsRetryable(err error) bool {
	if s.retryable == nil || err == nil {
		return false
	}
	return s.retryable(err)
}

// Close releases the backend connection.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func isMongoDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "mongodb://") || strings.HasPrefix(dsn, "mongodb+srv://")
}

func isRetryableMongoError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}
