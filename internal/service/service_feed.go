// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/store"
	"github.com/MKhiriev/lara-connect/internal/validators"
	"github.com/MKhiriev/lara-connect/models"
)

// idGenerator yields identifiers for new feed entries.
type idGenerator interface {
	Generate() string
}

type feedService struct {
	postRepository   store.PostRepository
	updateRepository store.UpdateRepository
	validator        validators.Validator
	ids              idGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewFeedService(
	postRepository store.PostRepository,
	updateRepository store.UpdateRepository,
	validator validators.Validator,
	ids idGenerator,
	logger *logger.Logger,
) FeedService {
	return &feedService{
		postRepository:   postRepository,
		updateRepository: updateRepository,
		validator:        validator,
		ids:              ids,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *feedService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepository.ListPosts(ctx, 0)
}

// CreatePost publishes content under the author's identifier.
func (s *feedService) CreatePost(ctx context.Context, author string, req models.CreatePostRequest) (models.Post, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Post{}, err
	}

	post, err := s.postRepository.CreatePost(ctx, models.Post{
		ID:        s.ids.Generate(),
		Author:    author,
		Content:   req.Content,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return models.Post{}, err
	}

	logger.FromContext(ctx).Info().Str("post_id", post.ID).Str("author", author).Msg("post created")
	return post, nil
}

// LatestUpdates returns the newest announcements, at most
// [models.LatestUpdatesLimit] of them.
func (s *feedService) LatestUpdates(ctx context.Context) ([]models.Update, error) {
	return s.updateRepository.LatestUpdates(ctx, models.LatestUpdatesLimit)
}

// CreateUpdate publishes an announcement. Only alumni may do so.
func (s *feedService) CreateUpdate(ctx context.Context, role models.Role, req models.CreateUpdateRequest) (models.Update, error) {
	if role != models.RoleAlumni {
		return models.Update{}, ErrForbiddenRole
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Update{}, err
	}

	return s.updateRepository.CreateUpdate(ctx, models.Update{
		ID:          s.ids.Generate(),
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   s.now().UTC(),
	})
}
