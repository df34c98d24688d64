package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/inkpress/internal/blog/domain"
	"github.com/aussiebroadwan/inkpress/internal/blog/store"
)

// ErrPostNotFound reports a missing or unpublished post; the public site
// treats drafts as nonexistent.
var ErrPostNotFound = errors.New("service: post not found")

type PostService struct {
	Store store.Store
}

// ListPublished returns published posts in creation order.
func (s *PostService) ListPublished(ctx context.Context) ([]domain.Post, error) {
	return s.Store.Posts().ListPublishedPosts(ctx)
}

// GetPublishedBySlug returns a published post by slug. Drafts come back as
// ErrPostNotFound.
func (s *PostService) GetPublishedBySlug(ctx context.Context, slug string) (domain.Post, error) {
	post, err := s.Store.Posts().GetPostBySlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Post{}, ErrPostNotFound
	}
	if err != nil {
		return domain.Post{}, err
	}
	if !post.Published {
		return domain.Post{}, ErrPostNotFound
	}
	return post, nil
}
