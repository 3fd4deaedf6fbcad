package models

import "time"

// User: akun operator. Toko ini dipakai satu operator saja, jadi tidak ada
// role; register ditolak kalau sudah ada akun.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
