package sales

import (
	"fmt"
	"log"

	"waserda-backend/internal/costing"
	"waserda-backend/internal/models"
	"waserda-backend/internal/notify"

	"gorm.io/gorm"
)

type LineInput struct {
	ItemID    string `json:"item_id"`
	Quantity  int64  `json:"quantity"`
	SalePrice int64  `json:"sale_price"`
}

// Record menulis satu transaksi penjualan (baru atau hasil edit) dalam satu
// transaksi database.
//
// Mode edit: stok semua baris lama dikembalikan dulu, baris lama dihapus,
// baru baris koreksi ditulis dengan HPP FIFO yang dihitung ulang. HPP tiap
// baris dihitung dari riwayat pembelian barang itu sampai tanggal penjualan,
// lalu dibekukan.
//
// Mengembalikan total transaksi dan baris nota untuk dikirim via WA.
func Record(db *gorm.DB, saleID, date, customerID string, lines []LineInput, note string, editing bool) (int64, []notify.ReceiptItem, error) {
	var total int64
	receipt := make([]notify.ReceiptItem, 0, len(lines))

	err := db.Transaction(func(tx *gorm.DB) error {
		if editing {
			var oldLines []models.SaleLine
			if err := tx.Where("sale_id = ?", saleID).Find(&oldLines).Error; err != nil {
				return err
			}
			for _, old := range oldLines {
				if err := tx.Model(&models.Item{}).
					Where("id = ?", old.ItemID).
					Update("stock", gorm.Expr("stock + ?", old.Quantity)).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("sale_id = ?", saleID).Delete(&models.SaleLine{}).Error; err != nil {
				return err
			}
		}

		for _, in := range lines {
			var item models.Item
			if err := tx.First(&item, "id = ?", in.ItemID).Error; err != nil {
				return fmt.Errorf("barang %s tidak ditemukan", in.ItemID)
			}

			// Riwayat pembelian barang ini sampai tanggal jual, urut tanggal naik
			var purchases []models.Purchase
			if err := tx.
				Where("item_id = ? AND date <= ?", item.ID, date).
				Order("date asc, id asc").
				Find(&purchases).Error; err != nil {
				return err
			}

			lots := make([]costing.Lot, 0, len(purchases))
			for _, p := range purchases {
				lots = append(lots, costing.Lot{Quantity: p.Quantity, UnitCost: p.UnitCost})
			}

			unitCost, shortfall := costing.UnitCost(in.Quantity, lots)
			if shortfall > 0 {
				// Kebijakan lama dipertahankan: unit tanpa riwayat dihargai 0,
				// laba jadi kebesaran. Minimal ketahuan di log.
				log.Printf("[WARN] Penjualan %s: %d unit %s (%s) tidak tertutup riwayat pembelian, HPP dihitung 0",
					saleID, shortfall, item.Name, item.ID)
			}

			lineTotal := in.Quantity * in.SalePrice
			line := models.SaleLine{
				SaleID:       saleID,
				Date:         date,
				CustomerID:   customerID,
				ItemID:       item.ID,
				ItemName:     item.Name,
				Quantity:     in.Quantity,
				SalePrice:    in.SalePrice,
				Total:        lineTotal,
				Note:         note,
				FIFOUnitCost: unitCost,
				Profit:       (in.SalePrice - unitCost) * in.Quantity,
			}

			if err := tx.Create(&line).Error; err != nil {
				return err
			}

			// Pengurangan sisi jual sengaja tanpa lantai nol (lihat inventory)
			if err := tx.Model(&models.Item{}).
				Where("id = ?", item.ID).
				Update("stock", gorm.Expr("stock - ?", in.Quantity)).Error; err != nil {
				return err
			}

			total += lineTotal
			receipt = append(receipt, notify.ReceiptItem{
				Name:     item.Name,
				Quantity: in.Quantity,
				Price:    in.SalePrice,
			})
		}

		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	return total, receipt, nil
}
