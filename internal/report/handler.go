package report

import (
	"fmt"
	"time"

	"waserda-backend/internal/config"
	"waserda-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

// GET /api/report/monthly?month=8&year=2025
// Tanpa parameter: bulan berjalan. Laporan selalu dihitung ulang dari data
// mentah, tidak pernah disimpan.
func MonthlyReportHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		month := c.QueryInt("month", int(now.Month()))
		year := c.QueryInt("year", now.Year())
		if month < 1 || month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "month tidak valid")
		}
		if year < 2000 {
			return fiber.NewError(fiber.StatusBadRequest, "year tidak valid")
		}

		in := Inputs{
			Period:        fmt.Sprintf("%04d-%02d", year, month),
			CashItemToken: cfg.CashItemToken,
		}

		if err := database.DB.Find(&in.Items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data barang tidak bisa diambil")
		}
		if err := database.DB.Find(&in.Purchases).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data pembelian tidak bisa diambil")
		}
		if err := database.DB.Find(&in.SaleLines).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data penjualan tidak bisa diambil")
		}
		if err := database.DB.Find(&in.Expenses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data pengeluaran tidak bisa diambil")
		}
		if err := database.DB.Find(&in.Contributions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data pemodal tidak bisa diambil")
		}

		r := Aggregate(in)
		r.Month = month
		r.Year = year

		return c.JSON(r)
	}
}
