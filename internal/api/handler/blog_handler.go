package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itsyourradio/radio-api/internal/api/middleware"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

type BlogHandler struct {
	blogService ports.BlogService
}

func NewBlogHandler(blogService ports.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

type createPostRequest struct {
	Title            string `json:"title"   validate:"required"`
	Content          string `json:"content" validate:"required"`
	FeaturedImageURL string `json:"featured_image_url"`
	Published        bool   `json:"is_published"`
}

type updatePostRequest struct {
	Title            *string `json:"title"`
	Content          *string `json:"content"`
	FeaturedImageURL *string `json:"featured_image_url"`
	Published        *bool   `json:"is_published"`
}

func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.blogService.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) Get(c echo.Context) error {
	post, err := h.blogService.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) Create(c echo.Context) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.blogService.CreatePost(c.Request().Context(), ports.CreatePostInput{
		Title:            req.Title,
		Content:          req.Content,
		AuthorID:         claims.UserID,
		FeaturedImageURL: req.FeaturedImageURL,
		Published:        req.Published,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.blogService.UpdatePost(c.Request().Context(), c.Param("id"), ports.UpdatePostInput{
		Title:            req.Title,
		Content:          req.Content,
		FeaturedImageURL: req.FeaturedImageURL,
		Published:        req.Published,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.blogService.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
