package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

// BlogService implements station blog post management.
type BlogService struct {
	repo   ports.BlogRepository
	logger zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, logger zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, logger: logger}
}

func (s *BlogService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.BlogPost, error) {
	now := time.Now().UTC()
	post := &domain.BlogPost{
		ID:               uuid.NewString(),
		Title:            input.Title,
		Content:          input.Content,
		AuthorID:         input.AuthorID,
		FeaturedImageURL: input.FeaturedImageURL,
		Published:        input.Published,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if post.Published {
		post.PublishedAt = now
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	s.logger.Info().Str("post_id", post.ID).Str("author_id", post.AuthorID).Msg("blog post created")
	return post, nil
}

func (s *BlogService) GetPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BlogService) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	return s.repo.ListPublished(ctx)
}

func (s *BlogService) UpdatePost(ctx context.Context, id string, input ports.UpdatePostInput) (*domain.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.FeaturedImageURL != nil {
		post.FeaturedImageURL = *input.FeaturedImageURL
	}
	if input.Published != nil {
		if *input.Published && !post.Published {
			post.PublishedAt = time.Now().UTC()
		}
		post.Published = *input.Published
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) DeletePost(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
