package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/atypikhouse/atypikhouse-api/internal/api/metrics"
	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// AdminHandler exposes moderation, statistics, and directory endpoints. All
// routes are mounted behind the admin role gate; the services re-check the
// role before touching the store.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type moderationResponse struct {
	User *domain.User `json:"user"`
}

type toggleActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// ApproveHost approves an owner's host application.
//
// @Summary      Approve a host
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Owner user id"
// @Success      200  {object}  moderationResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/hosts/{id}/approve [post]
func (h *AdminHandler) ApproveHost(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.admin.ApproveHost(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.ModerationActionsTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, moderationResponse{User: user})
}

// RejectHost rejects an owner's host application.
//
// @Summary      Reject a host
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Owner user id"
// @Success      200  {object}  moderationResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/hosts/{id}/reject [post]
func (h *AdminHandler) RejectHost(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.admin.RejectHost(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.ModerationActionsTotal.WithLabelValues("rejected").Inc()
	return c.JSON(http.StatusOK, moderationResponse{User: user})
}

// ToggleActive suspends or reinstates a user without touching the approval
// decision.
//
// @Summary      Suspend or reinstate a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "User id"
// @Param        body  body      toggleActiveRequest  true  "Desired state"
// @Success      200   {object}  moderationResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id}/active [patch]
func (h *AdminHandler) ToggleActive(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req toggleActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.admin.ToggleActive(c.Request().Context(), claims, c.Param("id"), *req.Active)
	if err != nil {
		return err
	}

	action := "suspended"
	if *req.Active {
		action = "reinstated"
	}
	metrics.ModerationActionsTotal.WithLabelValues(action).Inc()
	return c.JSON(http.StatusOK, moderationResponse{User: user})
}

// Stats returns the dashboard counters.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Stats
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	stats, err := h.admin.Stats(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

type userListResponse struct {
	Data       []*domain.User     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type ownerListResponse struct {
	Data       []ports.OwnerSummary `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// ListUsers pages through the directory with optional filters.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search       query     string  false  "Free-text search"
// @Param        role         query     string  false  "Role filter"
// @Param        host_status  query     string  false  "Host approval filter"
// @Param        active       query     bool    false  "Active filter"
// @Param        page         query     int     false  "Page (1-based)"
// @Param        limit        query     int     false  "Page size"
// @Success      200  {object}  userListResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	page, err := h.admin.ListUsers(c.Request().Context(), claims, userFilterFromQuery(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{
		Data: page.Items,
		Pagination: paginationResponse{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	})
}

// ListOwners pages through owner accounts enriched with property counts.
//
// @Summary      List owners
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search       query     string  false  "Free-text search"
// @Param        host_status  query     string  false  "Host approval filter"
// @Param        page         query     int     false  "Page (1-based)"
// @Param        limit        query     int     false  "Page size"
// @Success      200  {object}  ownerListResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/owners [get]
func (h *AdminHandler) ListOwners(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	page, err := h.admin.ListOwners(c.Request().Context(), claims, userFilterFromQuery(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ownerListResponse{
		Data: page.Items,
		Pagination: paginationResponse{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	})
}

func userFilterFromQuery(c echo.Context) ports.UserFilter {
	filter := ports.UserFilter{
		Search:     c.QueryParam("search"),
		Role:       domain.Role(c.QueryParam("role")),
		HostStatus: domain.HostStatus(c.QueryParam("host_status")),
	}
	if raw := c.QueryParam("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.Active = &active
		}
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return filter
}
