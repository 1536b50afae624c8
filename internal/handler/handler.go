// Package handler is the HTTP boundary consumed by the admin surface. All
// presentation beyond name resolution lives on the other side of this
// boundary.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"catalog-service/internal/catalog"
	"catalog-service/internal/middleware"
	"catalog-service/internal/model"
	"catalog-service/internal/store"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// unknownUser is the read-time fallback when an audit reference no longer
// resolves to a user.
const unknownUser = "Unknown"

// displayName resolves an audit user to a display name.
func displayName(u *model.User) string {
	if u == nil {
		return unknownUser
	}
	return u.Name
}

// auditView builds the audit block of a detail response. For trashed rows the
// last updater doubles as the deleter.
func auditView(f model.AuditFields) echo.Map {
	return echo.Map{
		"created_by": displayName(f.Creator),
		"updated_by": displayName(f.Updater),
	}
}

// listFilter parses the three-way status filter and the optional search and
// audit filters from the query string.
func listFilter(c echo.Context) store.ListFilter {
	f := store.ListFilter{
		Scope: store.ParseScope(c.QueryParam("status")),
		Q:     strings.TrimSpace(c.QueryParam("q")),
	}
	if v := c.QueryParam("created_by"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			u := uint(id)
			f.CreatedBy = &u
		}
	}
	if v := c.QueryParam("updated_by"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			u := uint(id)
			f.UpdatedBy = &u
		}
	}
	return f
}

// paramID parses the :id path parameter.
func paramID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// actingUser pulls the authenticated operator's id out of the context.
func actingUser(c echo.Context) (uint, error) {
	id, ok := middleware.ActingUserID(c)
	if !ok {
		return 0, errors.New("authentication required")
	}
	return id, nil
}

// respondError maps catalog and store errors onto HTTP responses: validation
// failures to 400 with a field-level message, missing rows to 404,
// referential-integrity rejections to 409.
func respondError(c echo.Context, entity string, err error) error {
	log := logger.FromContext(c)

	if ve, ok := catalog.AsValidationError(err); ok {
		log.Warn("Validation failed",
			zap.String("entity", entity),
			zap.String("field", ve.Field),
			zap.String("reason", ve.Message))
		prometheus.RecordRejectedOperation(entity, "validation")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": ve.Message,
			"field": ve.Field,
		})
	}
	if errors.Is(err, store.ErrNotFound) {
		log.Warn("Row not found", zap.String("entity", entity))
		prometheus.RecordRejectedOperation(entity, "not_found")
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": entity + " not found",
		})
	}
	if errors.Is(err, store.ErrInUse) {
		log.Warn("Delete rejected, row still referenced", zap.String("entity", entity))
		prometheus.RecordRejectedOperation(entity, "in_use")
		return c.JSON(http.StatusConflict, echo.Map{
			"error": entity + " is still referenced by products",
		})
	}

	log.Error("Operation failed", zap.String("entity", entity), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error": "internal error",
	})
}
