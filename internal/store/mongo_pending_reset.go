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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoPendingResetRepository is the mongodb implementation of
// [PendingResetRepository]. The TTL index removes expired documents
// eventually; lookups still filter on expires_at because the TTL monitor
// only runs once a minute.
type mongoPendingResetRepository struct {
	logger *logger.Logger
	resets *mongo.Collection
	now    func() time.Time
}

func NewMongoPendingResetRepository(db *MongoDB, logger *logger.Logger) PendingResetRepository {
	logger.Debug().Msg("creating mongodb pending reset repository")
	return &mongoPendingResetRepository{
		resets: db.collection(pendingResetsCollection),
		logger: logger,
		now:    time.Now,
	}
}

func (r *mongoPendingResetRepository) ReplacePendingReset(ctx context.Context, reset models.PendingPasswordReset) error {
	reset.VerifiedAt = nil

	_, err := r.resets.ReplaceOne(ctx, bson.M{"email": reset.Email}, reset, options.Replace().SetUpsert(true))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPendingResetRepository.ReplacePendingReset").Msg("error storing pending reset")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *mongoPendingResetRepository) FindPendingReset(ctx context.Context, email string) (models.PendingPasswordReset, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoPendingResetRepository) FindPendingResetByOTP(ctx context.Context, email, otp string) (models.PendingPasswordReset, error) {
	return r.findOne(ctx, bson.M{"email": email, "otp": otp})
}

func (r *mongoPendingResetRepository) findOne(ctx context.Context, filter bson.M) (models.PendingPasswordReset, error) {
	filter["expires_at"] = bson.M{"$gt": r.now()}

	var reset models.PendingPasswordReset
	if err := r.resets.FindOne(ctx, filter).Decode(&reset); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.PendingPasswordReset{}, ErrPendingResetNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPendingResetRepository.findOne").Msg("error finding pending reset")
		return models.PendingPasswordReset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return reset, nil
}

func (r *mongoPendingResetRepository) MarkPendingResetVerified(ctx context.Context, email string, at time.Time) error {
	filter := bson.M{"email": email, "expires_at": bson.M{"$gt": r.now()}}

	result, err := r.resets.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"verified_at": at}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPendingResetRepository.MarkPendingResetVerified").Msg("error marking pending reset verified")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.MatchedCount == 0 {
		return ErrPendingResetNotFound
	}

	return nil
}

func (r *mongoPendingResetRepository) DeletePendingReset(ctx context.Context, email string) error {
	if _, err := r.resets.DeleteOne(ctx, bson.M{"email": email}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPendingResetRepository.DeletePendingReset").Msg("error deleting pending reset")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *mongoPendingResetRepository) DeleteExpiredPendingResets(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.resets.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": now}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPendingResetRepository.DeleteExpiredPendingResets").Msg("error deleting expired resets")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.DeletedCount, nil
}
