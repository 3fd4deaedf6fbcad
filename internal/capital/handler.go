package capital

import (
	"fmt"
	"log"
	"strings"
	"time"

	"waserda-backend/internal/audit"
	"waserda-backend/internal/auth"
	"waserda-backend/internal/database"
	"waserda-backend/internal/ident"
	"waserda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ContributionResponse struct {
	ID           string `json:"id"`
	InvestorName string `json:"investor_name"`
	Amount       int64  `json:"amount"`
	Date         string `json:"date"`
}

type CreateContributionRequest struct {
	InvestorName string `json:"investor_name"`
	Amount       int64  `json:"amount"`
	Date         string `json:"date"` // "YYYY-MM-DD"
}

func toContributionResponse(pm models.CapitalContribution) ContributionResponse {
	return ContributionResponse{
		ID:           pm.ID,
		InvestorName: pm.InvestorName,
		Amount:       pm.Amount,
		Date:         pm.Date,
	}
}

func validateContributionBody(body *CreateContributionRequest) error {
	body.InvestorName = strings.TrimSpace(body.InvestorName)
	if body.InvestorName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nama pemodal wajib diisi")
	}
	if body.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Jumlah harus lebih dari 0")
	}
	if body.Date == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal wajib diisi")
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus 'YYYY-MM-DD'")
	}
	return nil
}

// GET /api/capital?month=8&year=2025
// Default bulan berjalan, seperti halaman pemodal aslinya.
func ListContributionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		month := c.QueryInt("month", int(now.Month()))
		year := c.QueryInt("year", now.Year())
		if month < 1 || month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "month tidak valid")
		}

		period := fmt.Sprintf("%04d-%02d", year, month)

		var contributions []models.CapitalContribution
		if err := database.DB.
			Where("date LIKE ?", period+"%").
			Order("date asc, id asc").
			Find(&contributions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data pemodal tidak bisa diambil")
		}

		resp := make([]ContributionResponse, 0, len(contributions))
		for _, pm := range contributions {
			resp = append(resp, toContributionResponse(pm))
		}
		return c.JSON(resp)
	}
}

// POST /api/capital
func CreateContributionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateContributionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if err := validateContributionBody(&body); err != nil {
			return err
		}

		newID, err := ident.NextFor(database.DB, &models.CapitalContribution{}, "PM")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ID pemodal tidak bisa dibuat")
		}

		pm := models.CapitalContribution{
			ID:           newID,
			InvestorName: body.InvestorName,
			Amount:       body.Amount,
			Date:         body.Date,
		}

		if err := database.DB.Create(&pm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Setoran modal tidak bisa disimpan")
		}

		writeContributionAudit(c, models.AuditActionCreate, nil, pm,
			fmt.Sprintf("Setoran modal baru: %s (%s)", pm.InvestorName, pm.ID))

		return c.Status(fiber.StatusCreated).JSON(toContributionResponse(pm))
	}
}

// PUT /api/capital/:id
func UpdateContributionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var pm models.CapitalContribution
		if err := database.DB.First(&pm, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Setoran modal tidak ditemukan")
		}
		before := pm

		var body CreateContributionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if err := validateContributionBody(&body); err != nil {
			return err
		}

		pm.InvestorName = body.InvestorName
		pm.Amount = body.Amount
		pm.Date = body.Date

		if err := database.DB.Save(&pm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Setoran modal tidak bisa diupdate")
		}

		writeContributionAudit(c, models.AuditActionUpdate, &before, pm,
			fmt.Sprintf("Setoran modal diubah: %s (%s)", pm.InvestorName, pm.ID))

		return c.JSON(toContributionResponse(pm))
	}
}

func writeContributionAudit(c *fiber.Ctx, action models.AuditAction, before *models.CapitalContribution, after models.CapitalContribution, desc string) {
	userID, userName, err := auth.CurrentUser(c)
	if err != nil {
		return
	}

	var beforeData any
	if before != nil {
		beforeData = toContributionResponse(*before)
	}

	if logErr := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "pemodal",
		EntityID:    after.ID,
		Action:      action,
		Description: desc,
		Before:      beforeData,
		After:       toContributionResponse(after),
	}); logErr != nil {
		log.Printf("Audit log gagal ditulis: %v", logErr)
	}
}
