package purchasing

import (
	"fmt"
	"log"
	"time"

	"waserda-backend/internal/audit"
	"waserda-backend/internal/auth"
	"waserda-backend/internal/database"
	"waserda-backend/internal/ident"
	"waserda-backend/internal/inventory"
	"waserda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PurchaseResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int64  `json:"quantity"`
	UnitCost int64  `json:"unit_cost"`
	Total    int64  `json:"total"`
	Note     string `json:"note"`
}

type CreatePurchaseRequest struct {
	ItemID   string  `json:"item_id"`
	Quantity int64   `json:"quantity"`
	UnitCost int64   `json:"unit_cost"`
	Note     string  `json:"note"`
	Date     *string `json:"date"` // "YYYY-MM-DD", kosong = hari ini
}

type UpdatePurchaseRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
	UnitCost int64  `json:"unit_cost"`
	Note     string `json:"note"`
}

func toPurchaseResponse(p models.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:       p.ID,
		Date:     p.Date,
		ItemID:   p.ItemID,
		ItemName: p.ItemName,
		Quantity: p.Quantity,
		UnitCost: p.UnitCost,
		Total:    p.Total,
		Note:     p.Note,
	}
}

func resolveDate(raw *string) (string, error) {
	if raw == nil || *raw == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", *raw); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus 'YYYY-MM-DD'")
	}
	return *raw, nil
}

// GET /api/purchases?month=8&year=2025
// Tanpa parameter: bulan berjalan, seperti halaman pembelian aslinya.
func ListPurchasesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		month := c.QueryInt("month", int(now.Month()))
		year := c.QueryInt("year", now.Year())
		if month < 1 || month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "month tidak valid")
		}

		period := fmt.Sprintf("%04d-%02d", year, month)

		var purchases []models.Purchase
		if err := database.DB.
			Where("date LIKE ?", period+"%").
			Order("date asc, id asc").
			Find(&purchases).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data pembelian tidak bisa diambil")
		}

		resp := make([]PurchaseResponse, 0, len(purchases))
		for _, p := range purchases {
			resp = append(resp, toPurchaseResponse(p))
		}
		return c.JSON(resp)
	}
}

// POST /api/purchases
func CreatePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePurchaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Jumlah harus lebih dari 0")
		}
		if body.UnitCost < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Harga beli tidak boleh negatif")
		}

		date, err := resolveDate(body.Date)
		if err != nil {
			return err
		}

		var item models.Item
		if err := database.DB.First(&item, "id = ?", body.ItemID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Barang tidak ditemukan")
		}

		var purchase models.Purchase
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			newID, err := ident.NextFor(tx, &models.Purchase{}, "PB")
			if err != nil {
				return err
			}

			purchase = models.Purchase{
				ID:       newID,
				Date:     date,
				ItemID:   item.ID,
				ItemName: item.Name,
				Quantity: body.Quantity,
				UnitCost: body.UnitCost,
				Total:    body.Quantity * body.UnitCost,
				Note:     body.Note,
			}

			if err := tx.Create(&purchase).Error; err != nil {
				return err
			}
			return inventory.AddStock(tx, item.ID, body.Quantity)
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pembelian tidak bisa disimpan")
		}

		writePurchaseAudit(c, models.AuditActionCreate, nil, purchase,
			fmt.Sprintf("Pembelian baru: %s x%d (%s)", purchase.ItemName, purchase.Quantity, purchase.ID))

		return c.Status(fiber.StatusCreated).JSON(toPurchaseResponse(purchase))
	}
}

// PUT /api/purchases/:id
// Koreksi pembelian: stok efek lama dibalik dulu (dengan lantai nol), baru
// efek jumlah baru diterapkan.
func UpdatePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var purchase models.Purchase
		if err := database.DB.First(&purchase, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pembelian tidak ditemukan")
		}
		before := purchase

		var body UpdatePurchaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Jumlah harus lebih dari 0")
		}
		if body.UnitCost < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Harga beli tidak boleh negatif")
		}

		var item models.Item
		if err := database.DB.First(&item, "id = ?", body.ItemID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Barang tidak ditemukan")
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := inventory.ReduceStockClamped(tx, purchase.ItemID, purchase.Quantity); err != nil {
				return err
			}

			purchase.Date = time.Now().Format("2006-01-02")
			purchase.ItemID = item.ID
			purchase.ItemName = item.Name
			purchase.Quantity = body.Quantity
			purchase.UnitCost = body.UnitCost
			purchase.Total = body.Quantity * body.UnitCost
			purchase.Note = body.Note

			if err := tx.Save(&purchase).Error; err != nil {
				return err
			}
			return inventory.AddStock(tx, item.ID, body.Quantity)
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pembelian tidak bisa diupdate")
		}

		writePurchaseAudit(c, models.AuditActionUpdate, &before, purchase,
			fmt.Sprintf("Pembelian diubah: %s (%s)", purchase.ItemName, purchase.ID))

		return c.JSON(toPurchaseResponse(purchase))
	}
}

func writePurchaseAudit(c *fiber.Ctx, action models.AuditAction, before *models.Purchase, after models.Purchase, desc string) {
	userID, userName, err := auth.CurrentUser(c)
	if err != nil {
		return
	}

	var beforeData any
	if before != nil {
		beforeData = toPurchaseResponse(*before)
	}

	if logErr := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "pembelian",
		EntityID:    after.ID,
		Action:      action,
		Description: desc,
		Before:      beforeData,
		After:       toPurchaseResponse(after),
	}); logErr != nil {
		log.Printf("Audit log gagal ditulis: %v", logErr)
	}
}
