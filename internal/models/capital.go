package models

import "time"

// CapitalContribution: setoran modal dari pemodal. Masuk ke laporan bulanan
// sebagai total modal dan dasar bagi hasil.
type CapitalContribution struct {
	ID           string `gorm:"primaryKey;size:10"` // PM001, PM002, ...
	InvestorName string `gorm:"size:100;not null"`
	Amount       int64  `gorm:"not null"`
	Date         string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CapitalContribution) TableName() string { return "pemodal" }
