package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/itsyourradio/radio-api/internal/api/middleware"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

type PodcastHandler struct {
	podcastService ports.PodcastService
	feedService    ports.FeedService
}

func NewPodcastHandler(podcastService ports.PodcastService, feedService ports.FeedService) *PodcastHandler {
	return &PodcastHandler{podcastService: podcastService, feedService: feedService}
}

type createShowRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	CoverArtURL string `json:"cover_art_url"`
	Category    string `json:"category"`
	IsOriginal  bool   `json:"is_original"`
	IsClassic   bool   `json:"is_classic"`
}

type createEpisodeRequest struct {
	Title         string    `json:"title"       validate:"required"`
	Description   string    `json:"description" validate:"required"`
	FilePath      string    `json:"file_path"   validate:"required"`
	Duration      float64   `json:"duration"`
	EpisodeNumber int       `json:"episode_number"`
	PublishedAt   time.Time `json:"published_at"`
}

func (h *PodcastHandler) ListShows(c echo.Context) error {
	shows, err := h.podcastService.ListShows(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shows)
}

func (h *PodcastHandler) GetShow(c echo.Context) error {
	show, err := h.podcastService.GetShow(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, show)
}

// CreateShow records a new show hosted by the authenticated podcaster.
func (h *PodcastHandler) CreateShow(c echo.Context) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return err
	}

	var req createShowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	show, err := h.podcastService.CreateShow(c.Request().Context(), ports.CreateShowInput{
		Title:       req.Title,
		HostID:      claims.UserID,
		Description: req.Description,
		CoverArtURL: req.CoverArtURL,
		Category:    req.Category,
		IsOriginal:  req.IsOriginal,
		IsClassic:   req.IsClassic,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, show)
}

func (h *PodcastHandler) DeleteShow(c echo.Context) error {
	if err := h.podcastService.DeleteShow(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PodcastHandler) CreateEpisode(c echo.Context) error {
	var req createEpisodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	episode, err := h.podcastService.CreateEpisode(c.Request().Context(), ports.CreateEpisodeInput{
		ShowID:        c.Param("id"),
		Title:         req.Title,
		Description:   req.Description,
		FilePath:      req.FilePath,
		Duration:      req.Duration,
		EpisodeNumber: req.EpisodeNumber,
		PublishedAt:   req.PublishedAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, episode)
}

func (h *PodcastHandler) ListEpisodes(c echo.Context) error {
	episodes, err := h.podcastService.ListShowEpisodes(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, episodes)
}

func (h *PodcastHandler) DeleteEpisode(c echo.Context) error {
	if err := h.podcastService.DeleteEpisode(c.Request().Context(), c.Param("id"), c.Param("episode_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Feed serves the show's RSS 2.0 document.
func (h *PodcastHandler) Feed(c echo.Context) error {
	feed, err := h.feedService.ShowFeed(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(feed))
}
