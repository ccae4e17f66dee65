package handler

import (
	"net/http"
	"strconv"

	"finder-service/internal/service"
	"finder-service/pkg/logger"
	"finder-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductHandler serves the read-only grouped product listings
type ProductHandler struct {
	products service.ProductService
}

func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles retrieving published grouped products with optional filtering
func (h *ProductHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordResourceOperation("products", "list")

	filter := service.ProductListFilter{Query: c.QueryParam("q")}
	filter.Page, filter.PerPage = pagination(c)

	if brandID := c.QueryParam("brand_id"); brandID != "" {
		id, err := strconv.ParseUint(brandID, 10, 32)
		if err != nil {
			log.Warn("Invalid brand_id parameter", zap.String("value", brandID))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid brand_id parameter"})
		}
		filter.BrandID = uint(id)
	}

	views, err := h.products.List(c.Request().Context(), filter)
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Products retrieved successfully",
		zap.Int("count", len(views)),
		zap.Uint("brand_id", filter.BrandID),
		zap.String("query", filter.Query))
	return c.JSON(http.StatusOK, views)
}

// Get handles retrieving a single product by ID
func (h *ProductHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordResourceOperation("products", "get")

	id, ok := pathID(c)
	if !ok {
		log.Warn("Invalid product ID", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product ID"})
	}

	view, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		log.Warn("Product not found", zap.Uint("product_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Product retrieved successfully",
		zap.Uint("product_id", id),
		zap.String("sku", view.SKU))
	return c.JSON(http.StatusOK, view)
}
