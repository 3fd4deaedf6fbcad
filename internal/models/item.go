package models

import "time"

// Item: barang dagangan. Stok hanya berubah lewat pembelian (+) dan
// penjualan (-), tidak pernah diedit langsung.
type Item struct {
	ID        string `gorm:"primaryKey;size:10"` // BRG001, BRG002, ...
	Name      string `gorm:"size:100;not null"`
	Unit      string `gorm:"size:20;not null"` // pcs, bungkus, botol, dst.
	Category  string `gorm:"size:50;not null"`
	Stock     int64  `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Item) TableName() string { return "barang" }
