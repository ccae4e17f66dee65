package handler

import (
	"net/http"

	"finder-service/internal/middleware"
	"finder-service/internal/service"
	"finder-service/pkg/logger"
	"finder-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DealerHandler serves the dealer-facing variant resource
type DealerHandler struct {
	dealer service.DealerService
}

func NewDealerHandler(dealer service.DealerService) *DealerHandler {
	return &DealerHandler{dealer: dealer}
}

// Profile handles retrieving the acting dealer's profile
func (h *DealerHandler) Profile(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordResourceOperation("dealer", "profile")

	dealerID, ok := middleware.DealerIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	profile, err := h.dealer.Profile(c.Request().Context(), dealerID)
	if err != nil {
		log.Error("Failed to load dealer profile", zap.Uint("dealer_id", dealerID), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// ListProducts handles retrieving the acting dealer's variants
func (h *DealerHandler) ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordResourceOperation("dealer", "list")

	dealerID, ok := middleware.DealerIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	page, perPage := pagination(c)
	views, err := h.dealer.ListVariants(c.Request().Context(), dealerID, page, perPage)
	if err != nil {
		log.Error("Failed to list dealer variants", zap.Uint("dealer_id", dealerID), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Dealer variants retrieved successfully",
		zap.Uint("dealer_id", dealerID),
		zap.Int("count", len(views)))
	return c.JSON(http.StatusOK, views)
}

// GetProduct handles retrieving a single variant by ID
func (h *DealerHandler) GetProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordResourceOperation("dealer", "get")

	id, ok := pathID(c)
	if !ok {
		log.Warn("Invalid variant ID", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product ID"})
	}

	view, err := h.dealer.GetVariant(c.Request().Context(), id)
	if err != nil {
		log.Warn("Variant not found", zap.Uint("product_id", id), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

// CreateProduct handles creating a new variant under a grouped parent.
// Success responds with 200, matching the rest of the API surface.
func (h *DealerHandler) CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordResourceOperation("dealer", "create")

	dealerID, ok := middleware.DealerIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var in service.CreateVariantInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	log.Info("Variant creation request",
		zap.Uint("dealer_id", dealerID),
		zap.Uint("parent_id", in.ParentID),
		zap.String("color", in.Color),
		zap.String("size", in.Size),
		zap.String("price", in.Price))

	view, err := h.dealer.CreateVariant(c.Request().Context(), dealerID, in)
	if err != nil {
		log.Warn("Variant creation failed",
			zap.Uint("dealer_id", dealerID),
			zap.Uint("parent_id", in.ParentID),
			zap.Error(err))
		return respondError(c, err)
	}

	prometheus.VariantsCreatedCounter.Inc()
	log.Info("Variant created successfully",
		zap.Uint("product_id", view.ID),
		zap.String("sku", view.SKU))
	return c.JSON(http.StatusOK, view)
}

// EditProduct handles updating a variant's color, size, or price
func (h *DealerHandler) EditProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordResourceOperation("dealer", "edit")

	dealerID, ok := middleware.DealerIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	id, ok := pathID(c)
	if !ok {
		log.Warn("Invalid variant ID", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product ID"})
	}

	var in service.EditVariantInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Uint("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	view, err := h.dealer.EditVariant(c.Request().Context(), dealerID, id, in)
	if err != nil {
		log.Warn("Variant edit failed",
			zap.Uint("dealer_id", dealerID),
			zap.Uint("product_id", id),
			zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Variant updated successfully",
		zap.Uint("product_id", id),
		zap.String("sku", view.SKU))
	return c.JSON(http.StatusOK, view)
}

// DeleteProduct handles permanently deleting a variant
func (h *DealerHandler) DeleteProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordResourceOperation("dealer", "delete")

	dealerID, ok := middleware.DealerIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	id, ok := pathID(c)
	if !ok {
		log.Warn("Invalid variant ID", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product ID"})
	}

	if err := h.dealer.DeleteVariant(c.Request().Context(), dealerID, id); err != nil {
		log.Warn("Variant deletion failed",
			zap.Uint("dealer_id", dealerID),
			zap.Uint("product_id", id),
			zap.Error(err))
		return respondError(c, err)
	}

	prometheus.VariantsDeletedCounter.Inc()
	log.Info("Variant deleted successfully", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"status": "OK"})
}
