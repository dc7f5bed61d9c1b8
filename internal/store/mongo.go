// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection and index names of the mongodb backend. Index names mirror the
// postgres constraint names so duplicate-key errors map the same way.
const (
	accountsCollection      = "accounts"
	pendingResetsCollection = "pending_password_resets"
	postsCollection         = "posts"
	updatesCollection       = "updates"

	pendingResetsEmailIndex   = "pending_password_resets_pkey"
	pendingResetsExpiresIndex = "pending_password_resets_expires_at_ttl"
)

// MongoDB holds a connected client and the selected database.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to cfg.DSN, pings the server and selects cfg.Name.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to mongodb successfully")

	return &MongoDB{
		client:   client,
		database: client.Database(cfg.Name),
		logger:   log,
	}, nil
}

// EnsureIndexes creates the unique indexes and the TTL index that lets the
// server drop expired pending resets on its own.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	accounts := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(accountsIdentifierConstraint),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(accountsEmailConstraint),
		},
		{
			Keys:    bson.D{{Key: "is_verified", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("accounts_unverified_created_at_idx"),
		},
	}
	if _, err := m.database.Collection(accountsCollection).Indexes().CreateMany(ctx, accounts); err != nil {
		return fmt.Errorf("creating account indexes: %w", err)
	}

	resets := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(pendingResetsEmailIndex),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0).SetName(pendingResetsExpiresIndex),
		},
	}
	if _, err := m.database.Collection(pendingResetsCollection).Indexes().CreateMany(ctx, resets); err != nil {
		return fmt.Errorf("creating pending reset indexes: %w", err)
	}

	feed := mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}}
	for _, name := range []string{postsCollection, updatesCollection} {
		if _, err := m.database.Collection(name).Indexes().CreateOne(ctx, feed); err != nil {
			return fmt.Errorf("creating %s index: %w", name, err)
		}
	}

	m.logger.Debug().Str("func", "*MongoDB.EnsureIndexes").Msg("mongodb indexes are in place")
	return nil
}

// Close disconnects the client, waiting at most five seconds.
func (m *MongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

func (m *MongoDB) collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// duplicateKeyCode is the server error code of a unique index violation.
const duplicateKeyCode = 11000

// duplicateKeyIndex returns the name of the unique index a duplicate key
// error was raised on, or "" when err is not a duplicate key error. The name
// is read from the "index: <name> " part of the server message only, since
// the rest of the message echoes the offending key value.
func duplicateKeyIndex(err error) string {
	if !mongo.IsDuplicateKeyError(err) {
		return ""
	}

	for _, msg := range duplicateKeyMessages(err) {
		if name := indexFromMessage(msg); name != "" {
			return name
		}
	}

	return "unknown"
}

func duplicateKeyMessages(err error) []string {
	var we mongo.WriteException
	if errors.As(err, &we) {
		var msgs []string
		for _, writeErr := range we.WriteErrors {
			if writeErr.Code == duplicateKeyCode {
				msgs = append(msgs, writeErr.Message)
			}
		}
		if we.WriteConcernError != nil && we.WriteConcernError.Code == duplicateKeyCode {
			msgs = append(msgs, we.WriteConcernError.Message)
		}
		return msgs
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		return []string{ce.Message}
	}

	return nil
}

// indexFromMessage extracts <name> from
// "E11000 duplicate key error collection: db.coll index: <name> dup key: {...}".
func indexFromMessage(msg string) string {
	_, rest, ok := strings.Cut(msg, " index: ")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(rest, " ")
	return name
}
