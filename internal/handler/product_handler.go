package handler

import (
	"net/http"
	"time"

	"catalog-service/internal/catalog"
	"catalog-service/internal/store"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductHandler exposes the product CRUD surface.
type ProductHandler struct {
	svc *catalog.Service
}

func NewProductHandler(svc *catalog.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List handles retrieving products with the status/search/audit filters
func (h *ProductHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "list")

	f := listFilter(c)
	log.Info("Listing products", zap.String("q", f.Q))

	defer prometheus.TrackDBOperation("query")(time.Now())
	products, err := h.svc.ListProducts(c.Request().Context(), f)
	if err != nil {
		return respondError(c, "product", err)
	}

	if f.Scope == store.ScopeTrashed {
		prometheus.UpdateTrashedRows("product", float64(len(products)))
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// Get handles retrieving a single product with its category, brand and supplier
func (h *ProductHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "get")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	p, err := h.svc.GetProduct(c.Request().Context(), id, store.ParseScope(c.QueryParam("status")))
	if err != nil {
		return respondError(c, "product", err)
	}

	log.Info("Product retrieved successfully",
		zap.Uint("product_id", p.ID),
		zap.String("name", p.Name))
	return c.JSON(http.StatusOK, echo.Map{
		"product": p,
		"audit":   auditView(p.AuditFields),
	})
}

// Create handles creating a new product
func (h *ProductHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "create")

	var in catalog.ProductInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Creating product", zap.String("name", in.Name), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("insert")(time.Now())
	p, err := h.svc.CreateProduct(c.Request().Context(), in, actor)
	if err != nil {
		return respondError(c, "product", err)
	}

	log.Info("Product created successfully", zap.Uint("product_id", p.ID))
	return c.JSON(http.StatusCreated, p)
}

// Update handles updating an existing product
func (h *ProductHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "update")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var in catalog.ProductInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Updating product", zap.Uint("product_id", id), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("update")(time.Now())
	p, err := h.svc.UpdateProduct(c.Request().Context(), id, in, actor)
	if err != nil {
		return respondError(c, "product", err)
	}

	log.Info("Product updated successfully", zap.Uint("product_id", p.ID))
	return c.JSON(http.StatusOK, p)
}

// Delete handles soft-deleting a product
func (h *ProductHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "delete")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Soft-deleting product", zap.Uint("product_id", id), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.svc.SoftDeleteProduct(c.Request().Context(), id, actor); err != nil {
		return respondError(c, "product", err)
	}

	log.Info("Product deleted successfully", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}

// Restore handles restoring a soft-deleted product
func (h *ProductHandler) Restore(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "restore")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Restoring product", zap.Uint("product_id", id), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.svc.RestoreProduct(c.Request().Context(), id, actor); err != nil {
		return respondError(c, "product", err)
	}

	log.Info("Product restored successfully", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Product restored successfully"})
}

// ForceDelete handles physically removing a product
func (h *ProductHandler) ForceDelete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "force_delete")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	log.Info("Force-deleting product", zap.Uint("product_id", id))

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.svc.ForceDeleteProduct(c.Request().Context(), id); err != nil {
		return respondError(c, "product", err)
	}

	log.Info("Product permanently removed", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Product permanently removed"})
}
