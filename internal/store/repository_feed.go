// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/models"
	"github.com/jackc/pgerrcode"
)

type postRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{db: db, logger: logger}
}

// CreatePost stores the post. A post whose author has no account yields
// [ErrAuthorNotFound].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	var created models.Post
	err := r.db.QueryRowContext(ctx, createPost, post.ID, post.Author, post.Content, post.CreatedAt).
		Scan(&created.ID, &created.Author, &created.Content, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		if code, _ := postgresError(err); code == pgerrcode.ForeignKeyViolation {
			return models.Post{}, ErrAuthorNotFound
		}
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *postRepository) ListPosts(ctx context.Context, limit int) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err = rows.Scan(&post.ID, &post.Author, &post.Content, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err = rowsErr(rows); err != nil {
		return nil, err
	}

	return posts, nil
}

type updateRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUpdateRepository(db *DB, logger *logger.Logger) UpdateRepository {
	logger.Debug().Msg("creating update repository")
	return &updateRepository{db: db, logger: logger}
}

func (r *updateRepository) CreateUpdate(ctx context.Context, update models.Update) (models.Update, error) {
	log := logger.FromContext(ctx)

	var created models.Update
	err := r.db.QueryRowContext(ctx, createUpdate, update.ID, update.Title, update.Description, update.CreatedAt).
		Scan(&created.ID, &created.Title, &created.Description, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*updateRepository.CreateUpdate").Msg("error inserting update")
		return models.Update{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *updateRepository) LatestUpdates(ctx context.Context, limit int) ([]models.Update, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLatestUpdatesQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*updateRepository.LatestUpdates").Msg("error listing updates")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	updates := make([]models.Update, 0, max(limit, 0))
	for rows.Next() {
		var update models.Update
		if err = rows.Scan(&update.ID, &update.Title, &update.Description, &update.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		updates = append(updates, update)
	}

	if err = rowsErr(rows); err != nil {
		return nil, err
	}

	return updates, nil
}

func rowsErr(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}
