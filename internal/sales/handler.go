package sales

import (
	"fmt"
	"log"
	"sort"
	"time"

	"waserda-backend/internal/audit"
	"waserda-backend/internal/auth"
	"waserda-backend/internal/database"
	"waserda-backend/internal/ident"
	"waserda-backend/internal/models"
	"waserda-backend/internal/notify"

	"github.com/gofiber/fiber/v2"
)

type CreateSaleRequest struct {
	CustomerID string      `json:"customer_id"`
	Lines      []LineInput `json:"lines"`
	Note       string      `json:"note"`
}

type SaleLineResponse struct {
	ItemID       string `json:"item_id"`
	ItemName     string `json:"item_name"`
	Quantity     int64  `json:"quantity"`
	SalePrice    int64  `json:"sale_price"`
	Total        int64  `json:"total"`
	FIFOUnitCost int64  `json:"fifo_unit_cost"`
	Profit       int64  `json:"profit"`
}

type SaleDetailResponse struct {
	ID           string             `json:"id"`
	Date         string             `json:"date"`
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	Note         string             `json:"note"`
	Lines        []SaleLineResponse `json:"lines"`
	Total        int64              `json:"total"`
}

type SaleSummary struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Total        int64  `json:"total"`
}

func validateLines(lines []LineInput) error {
	if len(lines) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Transaksi minimal satu baris")
	}
	for _, in := range lines {
		if in.ItemID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "item_id wajib diisi di tiap baris")
		}
		if in.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Jumlah harus lebih dari 0")
		}
		if in.SalePrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Harga jual tidak boleh negatif")
		}
	}
	return nil
}

// Nota WA dikirim setelah commit. Gagal kirim cuma dicatat, transaksi yang
// sudah tersimpan tidak pernah dibatalkan.
func sendReceipt(wa *notify.Client, customer models.Customer, date string, items []notify.ReceiptItem, total int64, note string) {
	nota := notify.FormatReceipt(date, customer.Name, customer.WhatsApp, items, total, note)
	if err := wa.Send(customer.WhatsApp, nota); err != nil {
		log.Printf("Nota WA untuk %s gagal terkirim: %v", customer.Name, err)
	}
}

// POST /api/sales
func CreateSaleHandler(wa *notify.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if err := validateLines(body.Lines); err != nil {
			return err
		}

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", body.CustomerID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pelanggan tidak ditemukan")
		}

		// ID transaksi tinggal di kolom sale_id (bukan "id" seperti entity lain)
		var existingIDs []string
		if err := database.DB.Model(&models.SaleLine{}).
			Distinct().
			Pluck("sale_id", &existingIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ID transaksi tidak bisa dibuat")
		}
		saleID := ident.Next(existingIDs, "PJ")

		date := time.Now().Format("2006-01-02")
		total, receiptItems, err := Record(database.DB, saleID, date, customer.ID, body.Lines, body.Note, false)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Penjualan tidak bisa disimpan")
		}

		writeSaleAudit(c, models.AuditActionCreate, saleID,
			fmt.Sprintf("Penjualan baru: %s, %d baris, total %s", saleID, len(body.Lines), notify.FormatAmount(total)))

		sendReceipt(wa, customer, date, receiptItems, total, body.Note)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    saleID,
			"total": total,
		})
	}
}

// PUT /api/sales/:id
// Edit = kembalikan stok baris lama, hapus, tulis ulang dengan HPP baru.
func UpdateSaleHandler(wa *notify.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		saleID := c.Params("id")

		var count int64
		database.DB.Model(&models.SaleLine{}).Where("sale_id = ?", saleID).Count(&count)
		if count == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}

		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if err := validateLines(body.Lines); err != nil {
			return err
		}

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", body.CustomerID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pelanggan tidak ditemukan")
		}

		date := time.Now().Format("2006-01-02")
		total, receiptItems, err := Record(database.DB, saleID, date, customer.ID, body.Lines, body.Note, true)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Penjualan tidak bisa diupdate")
		}

		writeSaleAudit(c, models.AuditActionUpdate, saleID,
			fmt.Sprintf("Penjualan diubah: %s, total %s", saleID, notify.FormatAmount(total)))

		sendReceipt(wa, customer, date, receiptItems, total, body.Note)

		return c.JSON(fiber.Map{
			"id":    saleID,
			"total": total,
		})
	}
}

// GET /api/sales?month=8&year=2025
// Ringkasan per transaksi untuk bulan yang diminta (default bulan berjalan).
func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		month := c.QueryInt("month", int(now.Month()))
		year := c.QueryInt("year", now.Year())
		if month < 1 || month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "month tidak valid")
		}

		period := fmt.Sprintf("%04d-%02d", year, month)

		var lines []models.SaleLine
		if err := database.DB.
			Where("date LIKE ?", period+"%").
			Order("sale_id asc").
			Find(&lines).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data penjualan tidak bisa diambil")
		}

		customerNames := customerNameMap()

		summaries := map[string]*SaleSummary{}
		for _, line := range lines {
			s, ok := summaries[line.SaleID]
			if !ok {
				name := customerNames[line.CustomerID]
				if name == "" {
					name = "Tidak Dikenal"
				}
				s = &SaleSummary{
					ID:           line.SaleID,
					Date:         line.Date,
					CustomerID:   line.CustomerID,
					CustomerName: name,
				}
				summaries[line.SaleID] = s
			}
			s.Total += line.Total
		}

		resp := make([]SaleSummary, 0, len(summaries))
		for _, s := range summaries {
			resp = append(resp, *s)
		}
		sort.Slice(resp, func(i, j int) bool { return resp[i].ID < resp[j].ID })

		return c.JSON(resp)
	}
}

// GET /api/sales/:id — tampilan nota satu transaksi.
func GetSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		saleID := c.Params("id")

		var lines []models.SaleLine
		if err := database.DB.
			Where("sale_id = ?", saleID).
			Order("line_id asc").
			Find(&lines).Error; err != nil || len(lines) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}

		detail := SaleDetailResponse{
			ID:         saleID,
			Date:       lines[0].Date,
			CustomerID: lines[0].CustomerID,
			Note:       lines[0].Note,
		}

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", detail.CustomerID).Error; err == nil {
			detail.CustomerName = customer.Name
		} else {
			detail.CustomerName = "Tidak Dikenal"
		}

		for _, line := range lines {
			detail.Lines = append(detail.Lines, SaleLineResponse{
				ItemID:       line.ItemID,
				ItemName:     line.ItemName,
				Quantity:     line.Quantity,
				SalePrice:    line.SalePrice,
				Total:        line.Total,
				FIFOUnitCost: line.FIFOUnitCost,
				Profit:       line.Profit,
			})
			detail.Total += line.Total
		}

		return c.JSON(detail)
	}
}

type FormItemOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Stock     int64  `json:"stock"`
	LastPrice int64  `json:"last_price"` // harga beli terakhir, prefill harga jual
}

type FormCustomerOption struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
}

// GET /api/sales/form-data
// Data untuk form transaksi: pelanggan, barang yang masih ada stok, dan
// harga beli terakhir per barang.
func FormDataHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customers []models.Customer
		if err := database.DB.Order("id asc").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data pelanggan tidak bisa diambil")
		}

		var items []models.Item
		if err := database.DB.Where("stock > 0").Order("id asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data barang tidak bisa diambil")
		}

		// Scan urut naik, entri terakhir menang = harga beli paling baru
		var purchases []models.Purchase
		if err := database.DB.Order("date asc, id asc").Find(&purchases).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data pembelian tidak bisa diambil")
		}
		lastPrice := map[string]int64{}
		for _, p := range purchases {
			lastPrice[p.ItemID] = p.UnitCost
		}

		customerOpts := make([]FormCustomerOption, 0, len(customers))
		for _, cust := range customers {
			customerOpts = append(customerOpts, FormCustomerOption{
				ID:       cust.ID,
				Name:     cust.Name,
				WhatsApp: cust.WhatsApp,
			})
		}

		itemOpts := make([]FormItemOption, 0, len(items))
		for _, item := range items {
			itemOpts = append(itemOpts, FormItemOption{
				ID:        item.ID,
				Name:      item.Name,
				Unit:      item.Unit,
				Stock:     item.Stock,
				LastPrice: lastPrice[item.ID],
			})
		}

		return c.JSON(fiber.Map{
			"customers": customerOpts,
			"items":     itemOpts,
		})
	}
}

func customerNameMap() map[string]string {
	names := map[string]string{}
	var customers []models.Customer
	if err := database.DB.Find(&customers).Error; err != nil {
		return names
	}
	for _, cust := range customers {
		names[cust.ID] = cust.Name
	}
	return names
}

func writeSaleAudit(c *fiber.Ctx, action models.AuditAction, saleID, desc string) {
	userID, userName, err := auth.CurrentUser(c)
	if err != nil {
		return
	}

	var lines []models.SaleLine
	database.DB.Where("sale_id = ?", saleID).Find(&lines)

	if logErr := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "penjualan",
		EntityID:    saleID,
		Action:      action,
		Description: desc,
		After:       lines,
	}); logErr != nil {
		log.Printf("Audit log gagal ditulis: %v", logErr)
	}
}
