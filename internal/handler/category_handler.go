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

// CategoryHandler exposes the category CRUD surface.
type CategoryHandler struct {
	svc *catalog.Service
}

func NewCategoryHandler(svc *catalog.Service) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List handles retrieving categories with the status/search/audit filters
func (h *CategoryHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("category", "list")

	f := listFilter(c)
	log.Info("Listing categories", zap.String("q", f.Q))

	defer prometheus.TrackDBOperation("query")(time.Now())
	categories, err := h.svc.ListCategories(c.Request().Context(), f)
	if err != nil {
		return respondError(c, "category", err)
	}

	if f.Scope == store.ScopeTrashed {
		prometheus.UpdateTrashedRows("category", float64(len(categories)))
	}

	log.Info("Categories retrieved successfully", zap.Int("count", len(categories)))
	return c.JSON(http.StatusOK, categories)
}

// Get handles retrieving a single category by ID
func (h *CategoryHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("category", "get")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	cat, err := h.svc.GetCategory(c.Request().Context(), id, store.ParseScope(c.QueryParam("status")))
	if err != nil {
		return respondError(c, "category", err)
	}

	log.Info("Category retrieved successfully",
		zap.Uint("category_id", cat.ID),
		zap.String("name", cat.Name))
	return c.JSON(http.StatusOK, echo.Map{
		"category": cat,
		"audit":    auditView(cat.AuditFields),
	})
}

// Create handles creating a new category
func (h *CategoryHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("category", "create")

	var in catalog.CategoryInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Creating category", zap.String("name", in.Name), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("insert")(time.Now())
	cat, err := h.svc.CreateCategory(c.Request().Context(), in, actor)
	if err != nil {
		return respondError(c, "category", err)
	}

	log.Info("Category created successfully", zap.Uint("category_id", cat.ID))
	return c.JSON(http.StatusCreated, cat)
}

// Update handles updating an existing category
func (h *CategoryHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("category", "update")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var in catalog.CategoryInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Updating category", zap.Uint("category_id", id), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("update")(time.Now())
	cat, err := h.svc.UpdateCategory(c.Request().Context(), id, in, actor)
	if err != nil {
		return respondError(c, "category", err)
	}

	log.Info("Category updated successfully", zap.Uint("category_id", cat.ID))
	return c.JSON(http.StatusOK, cat)
}

// Delete handles soft-deleting a category
func (h *CategoryHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("category", "delete")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Soft-deleting category", zap.Uint("category_id", id), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.svc.SoftDeleteCategory(c.Request().Context(), id, actor); err != nil {
		return respondError(c, "category", err)
	}

	log.Info("Category deleted successfully", zap.Uint("category_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Category deleted successfully"})
}

// Restore handles restoring a soft-deleted category
func (h *CategoryHandler) Restore(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("category", "restore")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	actor, err := actingUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	log.Info("Restoring category", zap.Uint("category_id", id), zap.Uint("actor", actor))

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.svc.RestoreCategory(c.Request().Context(), id, actor); err != nil {
		return respondError(c, "category", err)
	}

	log.Info("Category restored successfully", zap.Uint("category_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Category restored successfully"})
}

// ForceDelete handles physically removing a category
func (h *CategoryHandler) ForceDelete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("category", "force_delete")

	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	log.Info("Force-deleting category", zap.Uint("category_id", id))

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.svc.ForceDeleteCategory(c.Request().Context(), id); err != nil {
		return respondError(c, "category", err)
	}

	log.Info("Category permanently removed", zap.Uint("category_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Category permanently removed"})
}
