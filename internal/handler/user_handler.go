package handler

import (
	"net/http"

	"catalog-service/internal/catalog"
	"catalog-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserHandler exposes the read-only user directory used by the
// created_by/updated_by filters.
type UserHandler struct {
	svc *catalog.Service
}

func NewUserHandler(svc *catalog.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// List handles retrieving all back-office users
func (h *UserHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, "user", err)
	}

	log.Info("Users retrieved successfully", zap.Int("count", len(users)))
	return c.JSON(http.StatusOK, users)
}
