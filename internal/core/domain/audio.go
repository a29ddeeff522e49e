package domain

import (
	"errors"
	"time"
)

var (
	ErrAlbumNotFound   = errors.New("album not found")
	ErrSongNotFound    = errors.New("song not found")
	ErrShowNotFound    = errors.New("show not found")
	ErrEpisodeNotFound = errors.New("episode not found")
)

// Album groups songs released together by an artist.
type Album struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ArtistID    string    `json:"artist_id"`
	CoverArtURL string    `json:"cover_art_url,omitempty"`
	ReleaseDate time.Time `json:"release_date,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Song is a single uploaded track, optionally part of an album.
type Song struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ArtistID    string    `json:"artist_id"`
	AlbumID     string    `json:"album_id,omitempty"`
	FilePath    string    `json:"file_path"`
	Duration    float64   `json:"duration,omitempty"`
	TrackNumber int       `json:"track_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PodcastShow is a series of episodes hosted by a podcaster.
type PodcastShow struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	HostID      string    `json:"host_id"`
	Description string    `json:"description"`
	CoverArtURL string    `json:"cover_art_url,omitempty"`
	Category    string    `json:"category,omitempty"`
	IsOriginal  bool      `json:"is_original"`
	IsClassic   bool      `json:"is_classic"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PodcastEpisode is a single published episode of a show.
type PodcastEpisode struct {
	ID            string    `json:"id"`
	ShowID        string    `json:"show_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	FilePath      string    `json:"file_path"`
	Duration      float64   `json:"duration,omitempty"`
	EpisodeNumber int       `json:"episode_number,omitempty"`
	PublishedAt   time.Time `json:"published_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
