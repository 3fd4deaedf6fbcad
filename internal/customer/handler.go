package customer

import (
	"fmt"
	"log"
	"strings"

	"waserda-backend/internal/audit"
	"waserda-backend/internal/auth"
	"waserda-backend/internal/database"
	"waserda-backend/internal/ident"
	"waserda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
}

type CreateCustomerRequest struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
}

type UpdateCustomerRequest struct {
	Name     *string `json:"name"`
	WhatsApp *string `json:"whatsapp"`
}

func toCustomerResponse(cust models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:       cust.ID,
		Name:     cust.Name,
		WhatsApp: cust.WhatsApp,
	}
}

// GET /api/customers
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customers []models.Customer
		if err := database.DB.Order("id asc").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data pelanggan tidak bisa diambil")
		}

		resp := make([]CustomerResponse, 0, len(customers))
		for _, cust := range customers {
			resp = append(resp, toCustomerResponse(cust))
		}
		return c.JSON(resp)
	}
}

// POST /api/customers
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.WhatsApp = strings.TrimSpace(body.WhatsApp)
		if body.Name == "" || body.WhatsApp == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nama dan nomor WA wajib diisi")
		}

		newID, err := ident.NextFor(database.DB, &models.Customer{}, "PL")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ID pelanggan tidak bisa dibuat")
		}

		cust := models.Customer{
			ID:       newID,
			Name:     body.Name,
			WhatsApp: body.WhatsApp,
		}

		if err := database.DB.Create(&cust).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pelanggan tidak bisa disimpan")
		}

		writeCustomerAudit(c, models.AuditActionCreate, nil, cust,
			fmt.Sprintf("Pelanggan baru: %s (%s)", cust.Name, cust.ID))

		return c.Status(fiber.StatusCreated).JSON(toCustomerResponse(cust))
	}
}

// PUT /api/customers/:id
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cust models.Customer
		if err := database.DB.First(&cust, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pelanggan tidak ditemukan")
		}
		before := cust

		var body UpdateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
			cust.Name = strings.TrimSpace(*body.Name)
		}
		if body.WhatsApp != nil && strings.TrimSpace(*body.WhatsApp) != "" {
			cust.WhatsApp = strings.TrimSpace(*body.WhatsApp)
		}

		if err := database.DB.Save(&cust).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pelanggan tidak bisa diupdate")
		}

		writeCustomerAudit(c, models.AuditActionUpdate, &before, cust,
			fmt.Sprintf("Pelanggan diubah: %s (%s)", cust.Name, cust.ID))

		return c.JSON(toCustomerResponse(cust))
	}
}

func writeCustomerAudit(c *fiber.Ctx, action models.AuditAction, before *models.Customer, after models.Customer, desc string) {
	userID, userName, err := auth.CurrentUser(c)
	if err != nil {
		return
	}

	var beforeData any
	if before != nil {
		beforeData = toCustomerResponse(*before)
	}

	if logErr := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "pelanggan",
		EntityID:    after.ID,
		Action:      action,
		Description: desc,
		Before:      beforeData,
		After:       toCustomerResponse(after),
	}); logErr != nil {
		log.Printf("Audit log gagal ditulis: %v", logErr)
	}
}
