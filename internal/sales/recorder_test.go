package sales

import (
	"path/filepath"
	"testing"

	"waserda-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("database test tidak bisa dibuka: %v", err)
	}

	if err := db.AutoMigrate(&models.Item{}, &models.Purchase{}, &models.SaleLine{}); err != nil {
		t.Fatalf("AutoMigrate gagal: %v", err)
	}
	return db
}

// Barang dengan dua lot pembelian: 10 @100 (1 Agu) lalu 5 @120 (5 Agu).
func seedItemWithLots(t *testing.T, db *gorm.DB) {
	t.Helper()

	if err := db.Create(&models.Item{
		ID: "BRG001", Name: "Gula 1kg", Unit: "pcs", Category: "Sembako", Stock: 15,
	}).Error; err != nil {
		t.Fatalf("seed barang gagal: %v", err)
	}

	purchases := []models.Purchase{
		{ID: "PB001", Date: "2025-08-01", ItemID: "BRG001", ItemName: "Gula 1kg", Quantity: 10, UnitCost: 100, Total: 1000},
		{ID: "PB002", Date: "2025-08-05", ItemID: "BRG001", ItemName: "Gula 1kg", Quantity: 5, UnitCost: 120, Total: 600},
	}
	if err := db.Create(&purchases).Error; err != nil {
		t.Fatalf("seed pembelian gagal: %v", err)
	}
}

func itemStock(t *testing.T, db *gorm.DB, id string) int64 {
	t.Helper()
	var item models.Item
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		t.Fatalf("barang %s tidak ketemu: %v", id, err)
	}
	return item.Stock
}

func saleLines(t *testing.T, db *gorm.DB, saleID string) []models.SaleLine {
	t.Helper()
	var lines []models.SaleLine
	if err := db.Where("sale_id = ?", saleID).Order("line_id asc").Find(&lines).Error; err != nil {
		t.Fatalf("baris penjualan tidak bisa diambil: %v", err)
	}
	return lines
}

func TestRecordComputesFIFOCostAndProfit(t *testing.T) {
	db := newTestDB(t)
	seedItemWithLots(t, db)

	lines := []LineInput{{ItemID: "BRG001", Quantity: 12, SalePrice: 200}}
	total, receipt, err := Record(db, "PJ001", "2025-08-10", "PL001", lines, "", false)
	if err != nil {
		t.Fatalf("Record gagal: %v", err)
	}

	if total != 2400 {
		t.Errorf("total = %d, mau 2400", total)
	}
	if len(receipt) != 1 || receipt[0].Name != "Gula 1kg" {
		t.Errorf("nota salah: %+v", receipt)
	}

	saved := saleLines(t, db, "PJ001")
	if len(saved) != 1 {
		t.Fatalf("jumlah baris = %d, mau 1", len(saved))
	}
	// (10*100 + 2*120) / 12 = 103
	if saved[0].FIFOUnitCost != 103 {
		t.Errorf("hpp unit = %d, mau 103", saved[0].FIFOUnitCost)
	}
	if saved[0].Profit != (200-103)*12 {
		t.Errorf("laba = %d, mau %d", saved[0].Profit, (200-103)*12)
	}

	if got := itemStock(t, db, "BRG001"); got != 3 {
		t.Errorf("stok = %d, mau 3", got)
	}
}

func TestRecordEditIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedItemWithLots(t, db)

	lines := []LineInput{{ItemID: "BRG001", Quantity: 12, SalePrice: 200}}
	if _, _, err := Record(db, "PJ001", "2025-08-10", "PL001", lines, "", false); err != nil {
		t.Fatalf("Record gagal: %v", err)
	}

	stockBefore := itemStock(t, db, "BRG001")
	linesBefore := saleLines(t, db, "PJ001")

	// Edit dengan data persis sama: stok dan laba tidak boleh bergeser
	if _, _, err := Record(db, "PJ001", "2025-08-10", "PL001", lines, "", true); err != nil {
		t.Fatalf("Record (edit) gagal: %v", err)
	}

	if got := itemStock(t, db, "BRG001"); got != stockBefore {
		t.Errorf("stok berubah setelah edit identik: %d -> %d", stockBefore, got)
	}

	linesAfter := saleLines(t, db, "PJ001")
	if len(linesAfter) != len(linesBefore) {
		t.Fatalf("jumlah baris berubah: %d -> %d", len(linesBefore), len(linesAfter))
	}
	if linesAfter[0].FIFOUnitCost != linesBefore[0].FIFOUnitCost ||
		linesAfter[0].Profit != linesBefore[0].Profit {
		t.Errorf("hpp/laba berubah setelah edit identik: %+v -> %+v", linesBefore[0], linesAfter[0])
	}
}

func TestRecordEditRestoresStockBeforeRewriting(t *testing.T) {
	db := newTestDB(t)
	seedItemWithLots(t, db)

	if _, _, err := Record(db, "PJ001", "2025-08-10", "PL001",
		[]LineInput{{ItemID: "BRG001", Quantity: 12, SalePrice: 200}}, "", false); err != nil {
		t.Fatalf("Record gagal: %v", err)
	}

	// Koreksi jumlah dari 12 ke 5: stok = 15 - 5
	if _, _, err := Record(db, "PJ001", "2025-08-10", "PL001",
		[]LineInput{{ItemID: "BRG001", Quantity: 5, SalePrice: 200}}, "", true); err != nil {
		t.Fatalf("Record (edit) gagal: %v", err)
	}

	if got := itemStock(t, db, "BRG001"); got != 10 {
		t.Errorf("stok = %d, mau 10", got)
	}
}

func TestRecordStockInvariantOverSequence(t *testing.T) {
	db := newTestDB(t)
	seedItemWithLots(t, db)

	// Stok harus selalu = total beli - total jual, apa pun urut operasinya
	ops := []struct {
		saleID  string
		qty     int64
		editing bool
	}{
		{"PJ001", 4, false},
		{"PJ002", 6, false},
		{"PJ001", 2, true}, // koreksi PJ001 dari 4 ke 2
		{"PJ003", 1, false},
	}

	sold := int64(0)
	perSale := map[string]int64{}
	for _, op := range ops {
		if _, _, err := Record(db, op.saleID, "2025-08-10", "PL001",
			[]LineInput{{ItemID: "BRG001", Quantity: op.qty, SalePrice: 150}}, "", op.editing); err != nil {
			t.Fatalf("Record %s gagal: %v", op.saleID, err)
		}
		sold -= perSale[op.saleID] // edit mengganti kontribusi lama
		perSale[op.saleID] = op.qty
		sold += op.qty

		want := int64(15) - sold
		if got := itemStock(t, db, "BRG001"); got != want {
			t.Fatalf("setelah %s: stok = %d, mau %d", op.saleID, got, want)
		}
	}
}

func TestRecordFreezesCostAgainstLaterPurchases(t *testing.T) {
	db := newTestDB(t)
	seedItemWithLots(t, db)

	if _, _, err := Record(db, "PJ001", "2025-08-10", "PL001",
		[]LineInput{{ItemID: "BRG001", Quantity: 5, SalePrice: 200}}, "", false); err != nil {
		t.Fatalf("Record gagal: %v", err)
	}

	// Pembelian baru setelah transaksi tidak mengubah HPP yang sudah dibekukan
	if err := db.Create(&models.Purchase{
		ID: "PB003", Date: "2025-08-20", ItemID: "BRG001", ItemName: "Gula 1kg",
		Quantity: 100, UnitCost: 999, Total: 99900,
	}).Error; err != nil {
		t.Fatalf("seed pembelian tambahan gagal: %v", err)
	}

	saved := saleLines(t, db, "PJ001")
	if saved[0].FIFOUnitCost != 100 {
		t.Errorf("hpp unit = %d, mau 100", saved[0].FIFOUnitCost)
	}
}

func TestRecordUnknownItemFails(t *testing.T) {
	db := newTestDB(t)
	seedItemWithLots(t, db)

	_, _, err := Record(db, "PJ001", "2025-08-10", "PL001",
		[]LineInput{{ItemID: "BRG999", Quantity: 1, SalePrice: 100}}, "", false)
	if err == nil {
		t.Fatal("Record dengan barang tak dikenal harusnya gagal")
	}

	// Transaksi batal total: tidak ada baris yang tersisa
	if lines := saleLines(t, db, "PJ001"); len(lines) != 0 {
		t.Errorf("baris tersisa setelah rollback: %d", len(lines))
	}
}
