// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPostRepository struct {
	logger   *logger.Logger
	posts    *mongo.Collection
	accounts *mongo.Collection
}

func NewMongoPostRepository(db *MongoDB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating mongodb post repository")
	return &mongoPostRepository{
		posts:    db.collection(postsCollection),
		accounts: db.collection(accountsCollection),
		logger:   logger,
	}
}

// CreatePost checks the author the way the posts foreign key does on
// postgres.
func (r *mongoPostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	n, err := r.accounts.CountDocuments(ctx, bson.M{"username": post.Author})
	if err != nil {
		log.Err(err).Str("func", "*mongoPostRepository.CreatePost").Msg("error checking author")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 0 {
		return models.Post{}, ErrAuthorNotFound
	}

	if _, err = r.posts.InsertOne(ctx, post); err != nil {
		log.Err(err).Str("func", "*mongoPostRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

func (r *mongoPostRepository) ListPosts(ctx context.Context, limit int) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	if err := findNewestFirst(ctx, r.posts, limit, &posts); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPostRepository.ListPosts").Msg("error listing posts")
		return nil, err
	}

	return posts, nil
}

type mongoUpdateRepository struct {
	logger  *logger.Logger
	updates *mongo.Collection
}

func NewMongoUpdateRepository(db *MongoDB, logger *logger.Logger) UpdateRepository {
	logger.Debug().Msg("creating mongodb update repository")
	return &mongoUpdateRepository{
		updates: db.collection(updatesCollection),
		logger:  logger,
	}
}

func (r *mongoUpdateRepository) CreateUpdate(ctx context.Context, update models.Update) (models.Update, error) {
	if _, err := r.updates.InsertOne(ctx, update); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUpdateRepository.CreateUpdate").Msg("error inserting update")
		return models.Update{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return update, nil
}

func (r *mongoUpdateRepository) LatestUpdates(ctx context.Context, limit int) ([]models.Update, error) {
	updates := make([]models.Update, 0, max(limit, 0))
	if err := findNewestFirst(ctx, r.updates, limit, &updates); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUpdateRepository.LatestUpdates").Msg("error listing updates")
		return nil, err
	}

	return updates, nil
}

// findNewestFirst decodes documents sorted by created_at descending into
// result. A non-positive limit returns every document.
func findNewestFirst(ctx context.Context, coll *mongo.Collection, limit int, result any) error {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = cursor.All(ctx, result); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
