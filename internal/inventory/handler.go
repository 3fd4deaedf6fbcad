package inventory

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

// Pilihan dropdown satuan & kategori, sama dengan yang dipakai di form.
var UnitOptions = []string{
	"pcs", "bungkus", "botol", "dus", "liter", "kg", "pak", "sak", "renceng", "kaleng",
}

var CategoryOptions = []string{
	"Minuman", "Makanan", "Kebersihan", "Sembako", "Perlengkapan", "Gas", "Rokok", "Lainnya",
}

type ItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Stock    int64  `json:"stock"`
}

type CreateItemRequest struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

type UpdateItemRequest struct {
	Name     *string `json:"name"`
	Unit     *string `json:"unit"`
	Category *string `json:"category"`
}

func toItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Unit:     item.Unit,
		Category: item.Category,
		Stock:    item.Stock,
	}
}

// GET /api/items
func ListItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.Item
		if err := database.DB.Order("id asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data barang tidak bisa diambil")
		}

		resp := make([]ItemResponse, 0, len(items))
		for _, item := range items {
			resp = append(resp, toItemResponse(item))
		}
		return c.JSON(resp)
	}
}

// GET /api/items/options
func ItemOptionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"units":      UnitOptions,
			"categories": CategoryOptions,
		})
	}
}

// POST /api/items
// Barang baru selalu mulai dengan stok 0; stok hanya bergerak lewat transaksi.
func CreateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Unit == "" || body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nama, satuan, dan kategori wajib diisi")
		}

		newID, err := ident.NextFor(database.DB, &models.Item{}, "BRG")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ID barang tidak bisa dibuat")
		}

		item := models.Item{
			ID:       newID,
			Name:     body.Name,
			Unit:     body.Unit,
			Category: body.Category,
			Stock:    0,
		}

		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Barang tidak bisa disimpan")
		}

		writeItemAudit(c, models.AuditActionCreate, nil, item,
			fmt.Sprintf("Barang baru: %s (%s)", item.Name, item.ID))

		return c.Status(fiber.StatusCreated).JSON(toItemResponse(item))
	}
}

// PUT /api/items/:id
// Hanya nama/satuan/kategori; stok tidak bisa diubah dari sini.
func UpdateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.Item
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Barang tidak ditemukan")
		}
		before := item

		var body UpdateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
			item.Name = strings.TrimSpace(*body.Name)
		}
		if body.Unit != nil && *body.Unit != "" {
			item.Unit = *body.Unit
		}
		if body.Category != nil && *body.Category != "" {
			item.Category = *body.Category
		}

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Barang tidak bisa diupdate")
		}

		writeItemAudit(c, models.AuditActionUpdate, &before, item,
			fmt.Sprintf("Barang diubah: %s (%s)", item.Name, item.ID))

		return c.JSON(toItemResponse(item))
	}
}

func writeItemAudit(c *fiber.Ctx, action models.AuditAction, before *models.Item, after models.Item, desc string) {
	userID, userName, err := auth.CurrentUser(c)
	if err != nil {
		return
	}

	var beforeData any
	if before != nil {
		beforeData = toItemResponse(*before)
	}

	if logErr := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "barang",
		EntityID:    after.ID,
		Action:      action,
		Description: desc,
		Before:      beforeData,
		After:       toItemResponse(after),
	}); logErr != nil {
		log.Printf("Audit log gagal ditulis: %v", logErr)
	}
}
