package ports

import (
	"context"

	"github.com/itsyourradio/radio-api/internal/core/domain"
)

type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	FindByID(ctx context.Context, id string) (*domain.Album, error)
	List(ctx context.Context) ([]domain.Album, error)
	Delete(ctx context.Context, id string) error
}

type SongRepository interface {
	Create(ctx context.Context, song *domain.Song) error
	FindByID(ctx context.Context, id string) (*domain.Song, error)
	ListByAlbum(ctx context.Context, albumID string) ([]domain.Song, error)
	Delete(ctx context.Context, id string) error
}

type ShowRepository interface {
	Create(ctx context.Context, show *domain.PodcastShow) error
	FindByID(ctx context.Context, id string) (*domain.PodcastShow, error)
	List(ctx context.Context) ([]domain.PodcastShow, error)
	Delete(ctx context.Context, id string) error
}

type EpisodeRepository interface {
	Create(ctx context.Context, episode *domain.PodcastEpisode) error
	FindByID(ctx context.Context, id string) (*domain.PodcastEpisode, error)
	ListByShow(ctx context.Context, showID string) ([]domain.PodcastEpisode, error)
	Delete(ctx context.Context, id string) error
}

type BlogRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	FindByID(ctx context.Context, id string) (*domain.BlogPost, error)
	ListPublished(ctx context.Context) ([]domain.BlogPost, error)
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
}
