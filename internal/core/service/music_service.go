package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

// MusicService implements album and song management.
type MusicService struct {
	albums ports.AlbumRepository
	songs  ports.SongRepository
	logger zerolog.Logger
}

func NewMusicService(albums ports.AlbumRepository, songs ports.SongRepository, logger zerolog.Logger) *MusicService {
	return &MusicService{albums: albums, songs: songs, logger: logger}
}

func (s *MusicService) CreateAlbum(ctx context.Context, input ports.CreateAlbumInput) (*domain.Album, error) {
	now := time.Now().UTC()
	album := &domain.Album{
		ID:          uuid.NewString(),
		Title:       input.Title,
		ArtistID:    input.ArtistID,
		CoverArtURL: input.CoverArtURL,
		ReleaseDate: input.ReleaseDate,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.albums.Create(ctx, album); err != nil {
		return nil, err
	}
	s.logger.Info().Str("album_id", album.ID).Str("artist_id", album.ArtistID).Msg("album created")
	return album, nil
}

func (s *MusicService) GetAlbum(ctx context.Context, id string) (*domain.Album, error) {
	return s.albums.FindByID(ctx, id)
}

func (s *MusicService) ListAlbums(ctx context.Context) ([]domain.Album, error) {
	return s.albums.List(ctx)
}

func (s *MusicService) DeleteAlbum(ctx context.Context, id string) error {
	return s.albums.Delete(ctx, id)
}

func (s *MusicService) CreateSong(ctx context.Context, input ports.CreateSongInput) (*domain.Song, error) {
	if input.AlbumID != "" {
		if _, err := s.albums.FindByID(ctx, input.AlbumID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	song := &domain.Song{
		ID:          uuid.NewString(),
		Title:       input.Title,
		ArtistID:    input.ArtistID,
		AlbumID:     input.AlbumID,
		FilePath:    input.FilePath,
		Duration:    input.Duration,
		TrackNumber: input.TrackNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.songs.Create(ctx, song); err != nil {
		return nil, err
	}
	s.logger.Info().Str("song_id", song.ID).Str("artist_id", song.ArtistID).Msg("song created")
	return song, nil
}

func (s *MusicService) ListAlbumSongs(ctx context.Context, albumID string) ([]domain.Song, error) {
	if _, err := s.albums.FindByID(ctx, albumID); err != nil {
		return nil, err
	}
	return s.songs.ListByAlbum(ctx, albumID)
}

func (s *MusicService) DeleteSong(ctx context.Context, id string) error {
	return s.songs.Delete(ctx, id)
}
