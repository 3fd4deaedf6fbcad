package models

import "time"

type Customer struct {
	ID        string `gorm:"primaryKey;size:10"` // PL001, PL002, ...
	Name      string `gorm:"size:100;not null"`
	WhatsApp  string `gorm:"size:20;not null"` // nomor WA tujuan nota
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Customer) TableName() string { return "pelanggan" }
