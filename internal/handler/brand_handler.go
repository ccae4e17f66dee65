package handler

import (
	"net/http"

	"finder-service/internal/service"
	"finder-service/pkg/logger"
	"finder-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BrandHandler serves the read-only brand taxonomy resource
type BrandHandler struct {
	brands service.BrandService
}

func NewBrandHandler(brands service.BrandService) *BrandHandler {
	return &BrandHandler{brands: brands}
}

// List handles retrieving all brand terms
func (h *BrandHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordResourceOperation("brands", "list")

	page, perPage := pagination(c)
	search := c.QueryParam("search")

	views, err := h.brands.List(c.Request().Context(), page, perPage, search)
	if err != nil {
		log.Error("Failed to list brands", zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Brands retrieved successfully", zap.Int("count", len(views)))
	return c.JSON(http.StatusOK, views)
}

// Get handles retrieving a single brand by ID
func (h *BrandHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordResourceOperation("brands", "get")

	id, ok := pathID(c)
	if !ok {
		log.Warn("Invalid brand ID", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid brand ID"})
	}

	view, err := h.brands.Get(c.Request().Context(), id)
	if err != nil {
		log.Warn("Brand not found", zap.Uint("brand_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Brand retrieved successfully",
		zap.Uint("brand_id", id),
		zap.String("slug", view.Slug))
	return c.JSON(http.StatusOK, view)
}
