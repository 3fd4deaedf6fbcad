package database

import (
	"log"

	"waserda-backend/internal/config"
	"waserda-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Tidak bisa membuka database %s: %v", cfg.DatabasePath, err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Purchase{},
		&models.SaleLine{},
		&models.Customer{},
		&models.Expense{},
		&models.CapitalContribution{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate gagal: %v", err)
	}

	log.Println("Database siap. Migration selesai.")
}
