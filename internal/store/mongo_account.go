// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoAccountRepository is the mongodb implementation of [AccountRepository].
type mongoAccountRepository struct {
	logger   *logger.Logger
	accounts *mongo.Collection
}

func NewMongoAccountRepository(db *MongoDB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating mongodb account repository")
	return &mongoAccountRepository{
		accounts: db.collection(accountsCollection),
		logger:   logger,
	}
}

func (r *mongoAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if _, err := r.accounts.InsertOne(ctx, account); err != nil {
		log.Err(err).Str("func", "*mongoAccountRepository.CreateAccount").Msg("error inserting account")
		switch duplicateKeyIndex(err) {
		case accountsIdentifierConstraint:
			return models.Account{}, ErrIdentifierAlreadyExists
		case accountsEmailConstraint:
			return models.Account{}, ErrEmailAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return account, nil
}

func (r *mongoAccountRepository) FindAccountByIdentifier(ctx context.Context, identifier string) (models.Account, error) {
	return r.findOne(ctx, bson.M{"username": identifier})
}

func (r *mongoAccountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoAccountRepository) findOne(ctx context.Context, filter bson.M) (models.Account, error) {
	var account models.Account
	if err := r.accounts.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Account{}, ErrAccountNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*mongoAccountRepository.findOne").Msg("error finding account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

func (r *mongoAccountRepository) MarkAccountVerified(ctx context.Context, identifier string, at time.Time) error {
	update := bson.M{
		"$set":   bson.M{"is_verified": true, "updated_at": at},
		"$unset": bson.M{"otp": ""},
	}
	return r.updateOne(ctx, bson.M{"username": identifier}, update)
}

func (r *mongoAccountRepository) UpdatePasswordHash(ctx context.Context, email, passwordHash string, at time.Time) error {
	update := bson.M{"$set": bson.M{"password": passwordHash, "updated_at": at}}
	return r.updateOne(ctx, bson.M{"email": email}, update)
}

func (r *mongoAccountRepository) updateOne(ctx context.Context, filter, update bson.M) error {
	result, err := r.accounts.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoAccountRepository.updateOne").Msg("error updating account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.MatchedCount == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *mongoAccountRepository) DeleteUnverifiedAccount(ctx context.Context, identifier string) error {
	_, err := r.accounts.DeleteOne(ctx, bson.M{"username": identifier, "is_verified": false})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoAccountRepository.DeleteUnverifiedAccount").Msg("error deleting account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *mongoAccountRepository) DeleteUnverifiedAccounts(ctx context.Context, olderThan time.Time) (int64, error) {
	filter := bson.M{
		"is_verified": false,
		"created_at":  bson.M{"$lt": olderThan},
	}

	result, err := r.accounts.DeleteMany(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoAccountRepository.DeleteUnverifiedAccounts").Msg("error deleting accounts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.DeletedCount, nil
}
