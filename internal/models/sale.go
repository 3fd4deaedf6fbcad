package models

import "time"

// SaleLine: satu baris penjualan. Satu transaksi = N baris yang berbagi
// SaleID yang sama (PJ001 dst), makanya PK-nya row id tersendiri.
//
// FIFOUnitCost dihitung saat transaksi dicatat dan dibekukan: pembelian
// yang diedit belakangan tidak mengubah HPP transaksi lama.
type SaleLine struct {
	LineID       uint   `gorm:"primaryKey"`
	SaleID       string `gorm:"size:10;index;not null"` // id transaksi, shared antar baris
	Date         string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	CustomerID   string `gorm:"size:10;index;not null"`
	ItemID       string `gorm:"size:10;index;not null"`
	ItemName     string `gorm:"size:100;not null"`
	Quantity     int64  `gorm:"not null"`
	SalePrice    int64  `gorm:"not null"` // harga jual per satuan
	Total        int64  `gorm:"not null"` // quantity * sale_price
	Note         string `gorm:"size:255"`
	FIFOUnitCost int64  `gorm:"not null"` // hpp_unit
	Profit       int64  `gorm:"not null"` // (sale_price - fifo_unit_cost) * quantity
	CreatedAt    time.Time
}

func (SaleLine) TableName() string { return "penjualan" }
