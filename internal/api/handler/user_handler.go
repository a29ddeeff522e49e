package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itsyourradio/radio-api/internal/api/middleware"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateUserRequest struct {
	Email           *string `json:"email"      validate:"omitempty,email"`
	Username        *string `json:"username"   validate:"omitempty,min=3"`
	FullName        *string `json:"full_name"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profile_image_url"`
	CoverImageURL   *string `json:"cover_image_url"`
	Role            *string `json:"role"       validate:"omitempty,oneof=admin staff artist podcaster member"`
	Active          *bool   `json:"is_active"`
}

// Me returns the authenticated account's own profile.
//
// @Summary      Current account profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Get returns any account's public profile.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update modifies an account. Non-admins may only update their own profile;
// role and active changes require admin.
func (h *UserHandler) Update(c echo.Context) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), claims, c.Param("id"), ports.UpdateProfileInput{
		Email:           req.Email,
		Username:        req.Username,
		FullName:        req.FullName,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		CoverImageURL:   req.CoverImageURL,
		Role:            req.Role,
		Active:          req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes an account. Admin only, enforced by route middleware.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
