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

// SupplierHandler exposes the supplier CRUD surface.
type SupplierHandler struct {
	svc *catalog.Service
}

func NewSupplierHandler(svc *catalog.Service) *SupplierHandler {
	return &SupplierHandler{svc: svc}
}

// List handles retrieving suppliers with the status/search/audit filters
func (h *SupplierHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "list")

	f := listFilter(c)
	log.Info("Listing suppliers", zap.String("q", f.Q))

	defer prometheus.TrackDBOperation("query")(time.Now())
	suppliers, err := h.svc.ListSuppliers(c.Request().Context(), f)
	if err != nil {
		return respondError(c, "supplier", err)
	}

	if f.Scope == store.ScopeTrashed {
		prometheus.UpdateTrashedRows("supplier", float64(len(suppliers)))
	}

	log.Info("Suppliers retrieved successfully", zap.Int("count", len(suppliers)))
	return c.JSON(http.StatusOK, suppliers)
}

// Get handles retrieving a single supplier by ID
func (h *SupplierHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "get")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	sup, err := h.svc.GetSupplier(c.Request().Context(), id, store.ParseScope(c.QueryParam("status")))
	if err != nil {
		return respondError(c, "supplier", err)
	}

	log.Info("Supplier retrieved successfully",
		zap.Uint("supplier_id", sup.ID),
		zap.String("name", sup.Name))
	return c.JSON(http.StatusOK, echo.Map{
		"supplier": sup,
		"audit":    auditView(sup.AuditFields),
	})
}

// Create handles creating a new supplier
func (h *SupplierHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "create")

	var in catalog.SupplierInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Creating supplier", zap.String("name", in.Name), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("insert")(time.Now())
	sup, err := h.svc.CreateSupplier(c.Request().Context(), in, actor)
	if err != nil {
		return respondError(c, "supplier", err)
	}

	log.Info("Supplier created successfully", zap.Uint("supplier_id", sup.ID))
	return c.JSON(http.StatusCreated, sup)
}

// Update handles updating an existing supplier
func (h *SupplierHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "update")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var in catalog.SupplierInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Updating supplier", zap.Uint("supplier_id", id), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("update")(time.Now())
	sup, err := h.svc.UpdateSupplier(c.Request().Context(), id, in, actor)
	if err != nil {
		return respondError(c, "supplier", err)
	}

	log.Info("Supplier updated successfully", zap.Uint("supplier_id", sup.ID))
	return c.JSON(http.StatusOK, sup)
}

// Delete handles soft-deleting a supplier
func (h *SupplierHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "delete")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Soft-deleting supplier", zap.Uint("supplier_id", id), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.svc.SoftDeleteSupplier(c.Request().Context(), id, actor); err != nil {
		return respondError(c, "supplier", err)
	}

	log.Info("Supplier deleted successfully", zap.Uint("supplier_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Supplier deleted successfully"})
}

// Restore handles restoring a soft-deleted supplier
func (h *SupplierHandler) Restore(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "restore")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Restoring supplier", zap.Uint("supplier_id", id), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.svc.RestoreSupplier(c.Request().Context(), id, actor); err != nil {
		return respondError(c, "supplier", err)
	}

	log.Info("Supplier restored successfully", zap.Uint("supplier_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Supplier restored successfully"})
}

// ForceDelete handles physically removing a supplier
func (h *SupplierHandler) ForceDelete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "force_delete")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	log.Info("Force-deleting supplier", zap.Uint("supplier_id", id))

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.svc.ForceDeleteSupplier(c.Request().Context(), id); err != nil {
		return respondError(c, "supplier", err)
	}

	log.Info("Supplier permanently removed", zap.Uint("supplier_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Supplier permanently removed"})
}
