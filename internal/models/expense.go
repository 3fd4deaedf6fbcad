package models

import "time"

type Expense struct {
	ID        string `gorm:"primaryKey;size:10"` // OUT001, OUT002, ...
	Date      string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	Category  string `gorm:"size:50;not null"` // Listrik, Sewa, Bensin, ...
	Amount    int64  `gorm:"not null"`
	Note      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Expense) TableName() string { return "pengeluaran" }
