package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// FavoriteHandler handles bookmark endpoints.
type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

type toggleFavoriteResponse struct {
	PropertyID string `json:"property_id"`
	Favorited  bool   `json:"favorited"`
}

// Toggle flips the caller's bookmark on a property.
//
// @Summary      Toggle a favorite
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Property id"
// @Success      200  {object}  toggleFavoriteResponse
// @Failure      404  {object}  errorResponse
// @Router       /favorites/{id} [post]
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	propertyID := c.Param("id")
	favorited, err := h.service.Toggle(c.Request().Context(), claims, propertyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggleFavoriteResponse{PropertyID: propertyID, Favorited: favorited})
}

// ListMine returns the caller's favorites, newest first.
//
// @Summary      List my favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Favorite
// @Router       /favorites [get]
func (h *FavoriteHandler) ListMine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	favorites, err := h.service.ListMine(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favorites)
}
