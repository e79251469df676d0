package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/atypikhouse/atypikhouse-api/internal/api/metrics"
	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// maxImageBytes caps a single uploaded image payload.
const maxImageBytes = 10 << 20

// PropertyHandler handles listing CRUD and image uploads.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

type locationRequest struct {
	Address string `json:"address"  validate:"required"`
	City    string `json:"city"     validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
	Country string `json:"country"  validate:"required"`
}

type createPropertyRequest struct {
	Title         string          `json:"title"           validate:"required"`
	Description   string          `json:"description"     validate:"required"`
	Type          string          `json:"type"            validate:"required,oneof=cabin yurt floating_house dome treehouse other"`
	PricePerNight float64         `json:"price_per_night" validate:"required,gt=0"`
	Capacity      int             `json:"capacity"        validate:"required,min=1"`
	Location      locationRequest `json:"location"        validate:"required"`
	Amenities     []string        `json:"amenities"`
}

type updatePropertyRequest struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Type          *string          `json:"type" validate:"omitempty,oneof=cabin yurt floating_house dome treehouse other"`
	PricePerNight *float64         `json:"price_per_night" validate:"omitempty,gt=0"`
	Capacity      *int             `json:"capacity" validate:"omitempty,min=1"`
	Location      *locationRequest `json:"location"`
	Amenities     []string         `json:"amenities"`
	IsActive      *bool            `json:"is_active"`
}

type propertyListResponse struct {
	Data       []*domain.Property `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// Create lists a new property for the calling owner.
//
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Property details"
// @Success      201   {object}  domain.Property
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.service.Create(c.Request().Context(), claims, ports.CreatePropertyInput{
		Title:         req.Title,
		Description:   req.Description,
		Type:          domain.PropertyType(req.Type),
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		Location: domain.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			ZipCode: req.Location.ZipCode,
			Country: req.Location.Country,
		},
		Amenities: req.Amenities,
	})
	if err != nil {
		return err
	}

	metrics.PropertiesCreatedTotal.WithLabelValues(string(property.Type)).Inc()
	return c.JSON(http.StatusCreated, property)
}

// Get returns one property.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Param        id  path      string  true  "Property id"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	property, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// Update mutates a property; owner-or-admin only.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Property id"
// @Param        body  body      updatePropertyRequest  true  "Fields to change"
// @Success      200   {object}  domain.Property
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /properties/{id} [patch]
func (h *PropertyHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdatePropertyInput{
		Title:         req.Title,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		Amenities:     req.Amenities,
		IsActive:      req.IsActive,
	}
	if req.Type != nil {
		t := domain.PropertyType(*req.Type)
		input.Type = &t
	}
	if req.Location != nil {
		input.Location = &domain.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			ZipCode: req.Location.ZipCode,
			Country: req.Location.Country,
		}
	}

	property, err := h.service.Update(c.Request().Context(), claims, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// Delete removes a property; owner-or-admin only.
//
// @Summary      Delete a property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Property id"
// @Success      204  "no content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadImages accepts multipart image files and attaches them to the
// property; owner-or-admin only.
//
// @Summary      Upload property images
// @Tags         properties
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Property id"
// @Param        images  formData  file    true  "Image files"
// @Success      200  {object}  domain.Property
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id}/images [post]
func (h *PropertyHandler) UploadImages(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no images provided")
	}

	files := make([]ports.FileUpload, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > maxImageBytes {
			return echo.NewHTTPError(http.StatusBadRequest, "image too large")
		}
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable image")
		}
		data, err := io.ReadAll(io.LimitReader(src, maxImageBytes))
		src.Close()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable image")
		}
		files = append(files, ports.FileUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	property, err := h.service.UploadImages(c.Request().Context(), claims, c.Param("id"), files)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// List pages through properties with optional filters.
//
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Param        search  query     string  false  "Free-text search"
// @Param        type    query     string  false  "Lodging type filter"
// @Param        owner   query     string  false  "Owner id filter"
// @Param        active  query     bool    false  "Active filter"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200  {object}  propertyListResponse
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	filter := ports.PropertyFilter{
		Search:  c.QueryParam("search"),
		Type:    domain.PropertyType(c.QueryParam("type")),
		OwnerID: c.QueryParam("owner"),
	}
	if raw := c.QueryParam("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.Active = &active
		}
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	page, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, propertyListResponse{
		Data: page.Items,
		Pagination: paginationResponse{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	})
}

// Featured returns the latest active properties for the landing page.
//
// @Summary      Featured properties
// @Tags         properties
// @Produce      json
// @Param        limit  query     int  false  "Number of properties"
// @Success      200  {array}  domain.Property
// @Router       /properties/featured [get]
func (h *PropertyHandler) Featured(c echo.Context) error {
	n, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.service.Featured(c.Request().Context(), n)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
