package audit

import (
	"waserda-backend/internal/database"
	"waserda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?limit=100
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)
		if limit < 1 || limit > 500 {
			limit = 100
		}

		var logs []models.AuditLog
		if err := database.DB.
			Order("created_at desc").
			Limit(limit).
			Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Audit log tidak bisa diambil")
		}

		return c.JSON(logs)
	}
}
