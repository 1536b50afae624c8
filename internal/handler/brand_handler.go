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

// BrandHandler exposes the brand CRUD surface.
type BrandHandler struct {
	svc *catalog.Service
}

func NewBrandHandler(svc *catalog.Service) *BrandHandler {
	return &BrandHandler{svc: svc}
}

// List handles retrieving brands with the status/search/audit filters
func (h *BrandHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("brand", "list")

	f := listFilter(c)
	log.Info("Listing brands", zap.String("q", f.Q))

	defer prometheus.TrackDBOperation("query")(time.Now())
	brands, err := h.svc.ListBrands(c.Request().Context(), f)
	if err != nil {
		return respondError(c, "brand", err)
	}

	if f.Scope == store.ScopeTrashed {
		prometheus.UpdateTrashedRows("brand", float64(len(brands)))
	}

	log.Info("Brands retrieved successfully", zap.Int("count", len(brands)))
	return c.JSON(http.StatusOK, brands)
}

// Get handles retrieving a single brand by ID
func (h *BrandHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("brand", "get")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	b, err := h.svc.GetBrand(c.Request().Context(), id, store.ParseScope(c.QueryParam("status")))
	if err != nil {
		return respondError(c, "brand", err)
	}

	log.Info("Brand retrieved successfully",
		zap.Uint("brand_id", b.ID),
		zap.String("name", b.Name))
	return c.JSON(http.StatusOK, echo.Map{
		"brand": b,
		"audit": auditView(b.AuditFields),
	})
}

// Create handles creating a new brand
func (h *BrandHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("brand", "create")

	var in catalog.BrandInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Creating brand", zap.String("name", in.Name), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("insert")(time.Now())
	b, err := h.svc.CreateBrand(c.Request().Context(), in, actor)
	if err != nil {
		return respondError(c, "brand", err)
	}

	log.Info("Brand created successfully", zap.Uint("brand_id", b.ID))
	return c.JSON(http.StatusCreated, b)
}

// Update handles updating an existing brand
func (h *BrandHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("brand", "update")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var in catalog.BrandInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Updating brand", zap.Uint("brand_id", id), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("update")(time.Now())
	b, err := h.svc.UpdateBrand(c.Request().Context(), id, in, actor)
	if err != nil {
		return respondError(c, "brand", err)
	}

	log.Info("Brand updated successfully", zap.Uint("brand_id", b.ID))
	return c.JSON(http.StatusOK, b)
}

// Delete handles soft-deleting a brand
func (h *BrandHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("brand", "delete")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Soft-deleting brand", zap.Uint("brand_id", id), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.svc.SoftDeleteBrand(c.Request().Context(), id, actor); err != nil {
		return respondError(c, "brand", err)
	}

	log.Info("Brand deleted successfully", zap.Uint("brand_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Brand deleted successfully"})
}

// Restore handles restoring a soft-deleted brand
func (h *BrandHandler) Restore(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("brand", "restore")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Restoring brand", zap.Uint("brand_id", id), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.svc.RestoreBrand(c.Request().Context(), id, actor); err != nil {
		return respondError(c, "brand", err)
	}

	log.Info("Brand restored successfully", zap.Uint("brand_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Brand restored successfully"})
}

// ForceDelete handles physically removing a brand
func (h *BrandHandler) ForceDelete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("brand", "force_delete")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	log.Info("Force-deleting brand", zap.Uint("brand_id", id))

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.svc.ForceDeleteBrand(c.Request().Context(), id); err != nil {
		return respondError(c, "brand", err)
	}

	log.Info("Brand permanently removed", zap.Uint("brand_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Brand permanently removed"})
}
