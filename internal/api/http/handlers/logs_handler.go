package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corpkit/company-portal/internal/api/dto"
	"github.com/corpkit/company-portal/internal/auth"
	"github.com/corpkit/company-portal/internal/domain"
	"github.com/corpkit/company-portal/internal/service"
	apperrors "github.com/corpkit/company-portal/pkg/util"
)

// LogsHandler serves role-scoped logs.
type LogsHandler struct {
	logs *service.LogsService
}

// NewLogsHandler constructs handler.
func NewLogsHandler(logsService *service.LogsService) *LogsHandler {
	return &LogsHandler{logs: logsService}
}

// Mine handles GET /logs: the log set of the caller's own role.
func (h *LogsHandler) Mine(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("Token is missing")
	}

	set, err := h.logs.ForRole(c.UserContext(), claims.Role)
	if err != nil {
		return err
	}

	return c.JSON(dto.LogsResponse{
		Role: claims.Role,
		Logs: set.Entries,
		User: claims.Name,
	})
}

// ForRole returns the handler for GET /logs/<role>. Route registration guards it to role.
func (h *LogsHandler) ForRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		set, err := h.logs.ForRole(c.UserContext(), role)
		if err != nil {
			return err
		}
		return c.JSON(dto.RoleLogsResponse{
			Role:    role,
			Logs:    set.Entries,
			Message: set.Message,
		})
	}
}
