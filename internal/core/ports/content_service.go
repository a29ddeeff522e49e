package ports

import (
	"context"
	"time"

	"github.com/itsyourradio/radio-api/internal/core/domain"
)

type CreateAlbumInput struct {
	Title       string
	ArtistID    string
	CoverArtURL string
	ReleaseDate time.Time
	Description string
}

type CreateSongInput struct {
	Title       string
	ArtistID    string
	AlbumID     string
	FilePath    string
	Duration    float64
	TrackNumber int
}

type MusicService interface {
	CreateAlbum(ctx context.Context, input CreateAlbumInput) (*domain.Album, error)
	GetAlbum(ctx context.Context, id string) (*domain.Album, error)
	ListAlbums(ctx context.Context) ([]domain.Album, error)
	DeleteAlbum(ctx context.Context, id string) error
	CreateSong(ctx context.Context, input CreateSongInput) (*domain.Song, error)
	ListAlbumSongs(ctx context.Context, albumID string) ([]domain.Song, error)
	DeleteSong(ctx context.Context, id string) error
}

type CreateShowInput struct {
	Title       string
	HostID      string
	Description string
	CoverArtURL string
	Category    string
	IsOriginal  bool
	IsClassic   bool
}

type CreateEpisodeInput struct {
	ShowID        string
	Title         string
	Description   string
	FilePath      string
	Duration      float64
	EpisodeNumber int
	PublishedAt   time.Time
}

type PodcastService interface {
	CreateShow(ctx context.Context, input CreateShowInput) (*domain.PodcastShow, error)
	GetShow(ctx context.Context, id string) (*domain.PodcastShow, error)
	ListShows(ctx context.Context) ([]domain.PodcastShow, error)
	DeleteShow(ctx context.Context, id string) error
	CreateEpisode(ctx context.Context, input CreateEpisodeInput) (*domain.PodcastEpisode, error)
	ListShowEpisodes(ctx context.Context, showID string) ([]domain.PodcastEpisode, error)
	DeleteEpisode(ctx context.Context, showID, episodeID string) error
}

type CreatePostInput struct {
	Title            string
	Content          string
	AuthorID         string
	FeaturedImageURL string
	Published        bool
}

type UpdatePostInput struct {
	Title            *string
	Content          *string
	FeaturedImageURL *string
	Published        *bool
}

type BlogService interface {
	CreatePost(ctx context.Context, input CreatePostInput) (*domain.BlogPost, error)
	GetPost(ctx context.Context, id string) (*domain.BlogPost, error)
	ListPublished(ctx context.Context) ([]domain.BlogPost, error)
	UpdatePost(ctx context.Context, id string, input UpdatePostInput) (*domain.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
}

// FeedService renders the RSS feed for a podcast show.
type FeedService interface {
	ShowFeed(ctx context.Context, showID string) (string, error)
}
