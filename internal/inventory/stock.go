package inventory

import (
	"waserda-backend/internal/models"

	"gorm.io/gorm"
)

// AddStock menambah stok barang (sisi pembelian atau pembalikan penjualan).
func AddStock(tx *gorm.DB, itemID string, qty int64) error {
	return tx.Model(&models.Item{}).
		Where("id = ?", itemID).
		Update("stock", gorm.Expr("stock + ?", qty)).Error
}

// ReduceStockClamped mengurangi stok dengan lantai nol. Dipakai pembalikan
// pembelian supaya koreksi tidak membuat stok negatif. Pengurangan sisi
// penjualan TIDAK di-clamp (lihat sales) supaya selisih oversell kelihatan
// di invariant stok.
func ReduceStockClamped(tx *gorm.DB, itemID string, qty int64) error {
	var item models.Item
	if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
		return err
	}

	newStock := item.Stock - qty
	if newStock < 0 {
		newStock = 0
	}

	return tx.Model(&models.Item{}).
		Where("id = ?", itemID).
		Update("stock", newStock).Error
}
