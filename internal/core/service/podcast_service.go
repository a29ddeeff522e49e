package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

// FeedInvalidator drops any cached feed for a show after its episodes change.
type FeedInvalidator interface {
	Invalidate(ctx context.Context, showID string) error
}

// PodcastService implements show and episode management.
type PodcastService struct {
	shows    ports.ShowRepository
	episodes ports.EpisodeRepository
	feeds    FeedInvalidator
	logger   zerolog.Logger
}

func NewPodcastService(shows ports.ShowRepository, episodes ports.EpisodeRepository, feeds FeedInvalidator, logger zerolog.Logger) *PodcastService {
	return &PodcastService{shows: shows, episodes: episodes, feeds: feeds, logger: logger}
}

func (s *PodcastService) CreateShow(ctx context.Context, input ports.CreateShowInput) (*domain.PodcastShow, error) {
	now := time.Now().UTC()
	show := &domain.PodcastShow{
		ID:          uuid.NewString(),
		Title:       input.Title,
		HostID:      input.HostID,
		Description: input.Description,
		CoverArtURL: input.CoverArtURL,
		Category:    input.Category,
		IsOriginal:  input.IsOriginal,
		IsClassic:   input.IsClassic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.shows.Create(ctx, show); err != nil {
		return nil, err
	}
	s.logger.Info().Str("show_id", show.ID).Str("host_id", show.HostID).Msg("show created")
	return show, nil
}

func (s *PodcastService) GetShow(ctx context.Context, id string) (*domain.PodcastShow, error) {
	return s.shows.FindByID(ctx, id)
}

func (s *PodcastService) ListShows(ctx context.Context) ([]domain.PodcastShow, error) {
	return s.shows.List(ctx)
}

func (s *PodcastService) DeleteShow(ctx context.Context, id string) error {
	if err := s.shows.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateFeed(ctx, id)
	return nil
}

func (s *PodcastService) CreateEpisode(ctx context.Context, input ports.CreateEpisodeInput) (*domain.PodcastEpisode, error) {
	if _, err := s.shows.FindByID(ctx, input.ShowID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	publishedAt := input.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = now
	}

	episode := &domain.PodcastEpisode{
		ID:            uuid.NewString(),
		ShowID:        input.ShowID,
		Title:         input.Title,
		Description:   input.Description,
		FilePath:      input.FilePath,
		Duration:      input.Duration,
		EpisodeNumber: input.EpisodeNumber,
		PublishedAt:   publishedAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.episodes.Create(ctx, episode); err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx, input.ShowID)
	s.logger.Info().Str("episode_id", episode.ID).Str("show_id", episode.ShowID).Msg("episode created")
	return episode, nil
}

func (s *PodcastService) ListShowEpisodes(ctx context.Context, showID string) ([]domain.PodcastEpisode, error) {
	if _, err := s.shows.FindByID(ctx, showID); err != nil {
		return nil, err
	}
	return s.episodes.ListByShow(ctx, showID)
}

func (s *PodcastService) DeleteEpisode(ctx context.Context, showID, episodeID string) error {
	episode, err := s.episodes.FindByID(ctx, episodeID)
	if err != nil {
		return err
	}
	if episode.ShowID != showID {
		return domain.ErrEpisodeNotFound
	}
	if err := s.episodes.Delete(ctx, episodeID); err != nil {
		return err
	}
	s.invalidateFeed(ctx, showID)
	return nil
}

func (s *PodcastService) invalidateFeed(ctx context.Context, showID string) {
	if s.feeds == nil {
		return
	}
	if err := s.feeds.Invalidate(ctx, showID); err != nil {
		s.logger.Warn().Err(err).Str("show_id", showID).Msg("feed cache invalidation failed")
	}
}
