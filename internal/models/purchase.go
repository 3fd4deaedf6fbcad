package models

import "time"

// Purchase: satu lot pembelian barang. Riwayat ini dipakai sebagai input
// perhitungan HPP FIFO, jadi urutan tanggal naik itu penting.
type Purchase struct {
	ID        string `gorm:"primaryKey;size:10"` // PB001, PB002, ...
	Date      string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	ItemID    string `gorm:"size:10;index;not null"`
	ItemName  string `gorm:"size:100;not null"` // snapshot nama barang saat beli
	Quantity  int64  `gorm:"not null"`
	UnitCost  int64  `gorm:"not null"` // harga beli per satuan (rupiah)
	Total     int64  `gorm:"not null"` // quantity * unit_cost
	Note      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Purchase) TableName() string { return "pembelian" }
