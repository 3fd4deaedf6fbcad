package expense

import (
	"fmt"
	"log"
	"time"

	"waserda-backend/internal/audit"
	"waserda-backend/internal/auth"
	"waserda-backend/internal/database"
	"waserda-backend/internal/ident"
	"waserda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Pilihan kategori pengeluaran di form.
var CategoryOptions = []string{"Listrik", "Sewa", "Bensin", "ATK", "Gaji", "Lainnya"}

type ExpenseResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Note     string `json:"note"`
}

type CreateExpenseRequest struct {
	Date     string `json:"date"` // "YYYY-MM-DD"
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Note     string `json:"note"`
}

func toExpenseResponse(e models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:       e.ID,
		Date:     e.Date,
		Category: e.Category,
		Amount:   e.Amount,
		Note:     e.Note,
	}
}

func validateExpenseBody(body *CreateExpenseRequest) error {
	if body.Date == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal wajib diisi")
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus 'YYYY-MM-DD'")
	}
	if body.Category == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Kategori wajib diisi")
	}
	if body.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Jumlah harus lebih dari 0")
	}
	return nil
}

// GET /api/expenses
func ListExpensesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var expenses []models.Expense
		if err := database.DB.Order("date asc, id asc").Find(&expenses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data pengeluaran tidak bisa diambil")
		}

		resp := make([]ExpenseResponse, 0, len(expenses))
		for _, e := range expenses {
			resp = append(resp, toExpenseResponse(e))
		}
		return c.JSON(resp)
	}
}

// GET /api/expenses/categories
func ExpenseCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"categories": CategoryOptions})
	}
}

// POST /api/expenses
func CreateExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if err := validateExpenseBody(&body); err != nil {
			return err
		}

		newID, err := ident.NextFor(database.DB, &models.Expense{}, "OUT")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ID pengeluaran tidak bisa dibuat")
		}

		exp := models.Expense{
			ID:       newID,
			Date:     body.Date,
			Category: body.Category,
			Amount:   body.Amount,
			Note:     body.Note,
		}

		if err := database.DB.Create(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pengeluaran tidak bisa disimpan")
		}

		writeExpenseAudit(c, models.AuditActionCreate, nil, exp,
			fmt.Sprintf("Pengeluaran baru: %s %s (%s)", exp.Category, exp.ID, exp.Date))

		return c.Status(fiber.StatusCreated).JSON(toExpenseResponse(exp))
	}
}

// PUT /api/expenses/:id
func UpdateExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var exp models.Expense
		if err := database.DB.First(&exp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
		}
		before := exp

		var body CreateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if err := validateExpenseBody(&body); err != nil {
			return err
		}

		exp.Date = body.Date
		exp.Category = body.Category
		exp.Amount = body.Amount
		exp.Note = body.Note

		if err := database.DB.Save(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pengeluaran tidak bisa diupdate")
		}

		writeExpenseAudit(c, models.AuditActionUpdate, &before, exp,
			fmt.Sprintf("Pengeluaran diubah: %s (%s)", exp.Category, exp.ID))

		return c.JSON(toExpenseResponse(exp))
	}
}

func writeExpenseAudit(c *fiber.Ctx, action models.AuditAction, before *models.Expense, after models.Expense, desc string) {
	userID, userName, err := auth.CurrentUser(c)
	if err != nil {
		return
	}

	var beforeData any
	if before != nil {
		beforeData = toExpenseResponse(*before)
	}

	if logErr := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "pengeluaran",
		EntityID:    after.ID,
		Action:      action,
		Description: desc,
		Before:      beforeData,
		After:       toExpenseResponse(after),
	}); logErr != nil {
		log.Printf("Audit log gagal ditulis: %v", logErr)
	}
}
