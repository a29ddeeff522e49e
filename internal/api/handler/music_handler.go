package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/itsyourradio/radio-api/internal/api/middleware"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

type MusicHandler struct {
	musicService ports.MusicService
}

func NewMusicHandler(musicService ports.MusicService) *MusicHandler {
	return &MusicHandler{musicService: musicService}
}

type createAlbumRequest struct {
	Title       string    `json:"title" validate:"required"`
	CoverArtURL string    `json:"cover_art_url"`
	ReleaseDate time.Time `json:"release_date"`
	Description string    `json:"description"`
}

type createSongRequest struct {
	Title       string  `json:"title"     validate:"required"`
	AlbumID     string  `json:"album_id"`
	FilePath    string  `json:"file_path" validate:"required"`
	Duration    float64 `json:"duration"`
	TrackNumber int     `json:"track_number"`
}

func (h *MusicHandler) ListAlbums(c echo.Context) error {
	albums, err := h.musicService.ListAlbums(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, albums)
}

func (h *MusicHandler) GetAlbum(c echo.Context) error {
	album, err := h.musicService.GetAlbum(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, album)
}

// CreateAlbum records a new album owned by the authenticated artist.
func (h *MusicHandler) CreateAlbum(c echo.Context) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return err
	}

	var req createAlbumRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	album, err := h.musicService.CreateAlbum(c.Request().Context(), ports.CreateAlbumInput{
		Title:       req.Title,
		ArtistID:    claims.UserID,
		CoverArtURL: req.CoverArtURL,
		ReleaseDate: req.ReleaseDate,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, album)
}

func (h *MusicHandler) DeleteAlbum(c echo.Context) error {
	if err := h.musicService.DeleteAlbum(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MusicHandler) CreateSong(c echo.Context) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return err
	}

	var req createSongRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	song, err := h.musicService.CreateSong(c.Request().Context(), ports.CreateSongInput{
		Title:       req.Title,
		ArtistID:    claims.UserID,
		AlbumID:     req.AlbumID,
		FilePath:    req.FilePath,
		Duration:    req.Duration,
		TrackNumber: req.TrackNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, song)
}

func (h *MusicHandler) ListAlbumSongs(c echo.Context) error {
	songs, err := h.musicService.ListAlbumSongs(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, songs)
}

func (h *MusicHandler) DeleteSong(c echo.Context) error {
	if err := h.musicService.DeleteSong(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
