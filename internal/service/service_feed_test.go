// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/mock"
	"github.com/MKhiriev/lara-connect/internal/store"
	"github.com/MKhiriev/lara-connect/internal/validators"
	"github.com/MKhiriev/lara-connect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestFeedSvc(t *testing.T) (*feedService, *mock.MockPostRepository, *mock.MockUpdateRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostRepository(ctrl)
	updates := mock.NewMockUpdateRepository(ctrl)

	svc := NewFeedService(posts, updates, validators.NewRequestValidator(), fixedID("id-1"), logger.Nop()).(*feedService)
	svc.now = func() time.Time { return testNow }
	return svc, posts, updates
}

func TestFeedService_ListPosts_Unbounded(t *testing.T) {
	svc, posts, _ := newTestFeedSvc(t)
	want := []models.Post{{ID: "2"}, {ID: "1"}}

	posts.EXPECT().ListPosts(gomock.Any(), 0).Return(want, nil)

	got, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFeedService_CreatePost(t *testing.T) {
	svc, posts, _ := newTestFeedSvc(t)
	want := models.Post{ID: "id-1", Author: "21FE1A0001", Content: "hello", CreatedAt: testNow}

	posts.EXPECT().CreatePost(gomock.Any(), want).Return(want, nil)

	got, err := svc.CreatePost(context.Background(), "21FE1A0001", models.CreatePostRequest{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFeedService_CreatePost_Errors(t *testing.T) {
	t.Run("empty content", func(t *testing.T) {
		svc, _, _ := newTestFeedSvc(t)
		_, err := svc.CreatePost(context.Background(), "21FE1A0001", models.CreatePostRequest{})
		assert.ErrorIs(t, err, validators.ErrValidation)
	})

	t.Run("unknown author", func(t *testing.T) {
		svc, posts, _ := newTestFeedSvc(t)
		posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, store.ErrAuthorNotFound)

		_, err := svc.CreatePost(context.Background(), "99FE1A0001", models.CreatePostRequest{Content: "hi"})
		assert.ErrorIs(t, err, store.ErrAuthorNotFound)
	})
}

func TestFeedService_LatestUpdates_Limit(t *testing.T) {
	svc, _, updates := newTestFeedSvc(t)

	updates.EXPECT().LatestUpdates(gomock.Any(), models.LatestUpdatesLimit).Return(nil, nil)

	got, err := svc.LatestUpdates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFeedService_CreateUpdate(t *testing.T) {
	req := models.CreateUpdateRequest{Title: "Reunion", Description: "Saturday"}

	t.Run("alumni", func(t *testing.T) {
		svc, _, updates := newTestFeedSvc(t)
		want := models.Update{ID: "id-1", Title: "Reunion", Description: "Saturday", CreatedAt: testNow}
		updates.EXPECT().CreateUpdate(gomock.Any(), want).Return(want, nil)

		got, err := svc.CreateUpdate(context.Background(), models.RoleAlumni, req)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("student forbidden", func(t *testing.T) {
		svc, _, _ := newTestFeedSvc(t)

		_, err := svc.CreateUpdate(context.Background(), models.RoleStudent, req)
		assert.ErrorIs(t, err, ErrForbiddenRole)
	})

	t.Run("missing title", func(t *testing.T) {
		svc, _, _ := newTestFeedSvc(t)

		_, err := svc.CreateUpdate(context.Background(), models.RoleAlumni, models.CreateUpdateRequest{Description: "x"})
		assert.ErrorIs(t, err, validators.ErrValidation)
	})
}
