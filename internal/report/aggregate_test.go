package report

import (
	"testing"

	"waserda-backend/internal/models"
)

func TestSplitSumsExactly(t *testing.T) {
	// Bagian pemodal = sisa, jadi jumlah tiga bagian harus persis total laba
	for profit := int64(1); profit <= 2000; profit++ {
		op, res, inv := Split(profit)
		if op+res+inv != profit {
			t.Fatalf("Split(%d): %d + %d + %d != %d", profit, op, res, inv, profit)
		}
	}

	for _, profit := range []int64{12345, 999999, 1240007, 73500001} {
		op, res, inv := Split(profit)
		if op+res+inv != profit {
			t.Errorf("Split(%d): %d + %d + %d != %d", profit, op, res, inv, profit)
		}
	}
}

func TestSplitZeroAndNegativeProfit(t *testing.T) {
	for _, profit := range []int64{0, -1, -5000} {
		op, res, inv := Split(profit)
		if op != 0 || res != 0 || inv != 0 {
			t.Errorf("Split(%d) = (%d, %d, %d), mau semua 0", profit, op, res, inv)
		}
	}
}

func TestSplitRatios(t *testing.T) {
	op, res, inv := Split(1000)
	if op != 300 {
		t.Errorf("bagian operator = %d, mau 300", op)
	}
	if res != 350 {
		t.Errorf("bagian kas = %d, mau 350", res)
	}
	if inv != 350 {
		t.Errorf("bagian pemodal = %d, mau 350", inv)
	}
}

func TestAggregateMonthBoundary(t *testing.T) {
	// Transaksi akhir Agustus dan awal September tidak boleh bercampur
	lines := []models.SaleLine{
		{SaleID: "PJ001", Date: "2025-08-31", Total: 10000, Profit: 2000},
		{SaleID: "PJ002", Date: "2025-09-01", Total: 50000, Profit: 9000},
	}

	aug := Aggregate(Inputs{Period: "2025-08", SaleLines: lines})
	sep := Aggregate(Inputs{Period: "2025-09", SaleLines: lines})

	if aug.TotalSales != 10000 || aug.TotalProfit != 2000 {
		t.Errorf("Agustus: sales=%d profit=%d, mau 10000/2000", aug.TotalSales, aug.TotalProfit)
	}
	if sep.TotalSales != 50000 || sep.TotalProfit != 9000 {
		t.Errorf("September: sales=%d profit=%d, mau 50000/9000", sep.TotalSales, sep.TotalProfit)
	}
}

func TestAggregateDailyBreakdownSorted(t *testing.T) {
	lines := []models.SaleLine{
		{SaleID: "PJ003", Date: "2025-08-20", Total: 5000, Profit: 1000},
		{SaleID: "PJ001", Date: "2025-08-05", Total: 8000, Profit: 1500},
		{SaleID: "PJ002", Date: "2025-08-05", Total: 2000, Profit: 500},
	}

	r := Aggregate(Inputs{Period: "2025-08", SaleLines: lines})

	if len(r.Daily) != 2 {
		t.Fatalf("jumlah hari = %d, mau 2", len(r.Daily))
	}
	if r.Daily[0].Date != "2025-08-05" || r.Daily[1].Date != "2025-08-20" {
		t.Errorf("urutan harian salah: %+v", r.Daily)
	}
	if r.Daily[0].Sales != 10000 || r.Daily[0].Profit != 2000 {
		t.Errorf("rekap 2025-08-05 = %+v, mau sales 10000 profit 2000", r.Daily[0])
	}
}

func TestAggregateCashAndInventory(t *testing.T) {
	in := Inputs{
		Period:        "2025-08",
		CashItemToken: "KAS",
		Items: []models.Item{
			{ID: "BRG001", Name: "Gula 1kg", Stock: 10},
			{ID: "BRG002", Name: "Kas Laci", Stock: 1}, // token cocok case-insensitive
		},
		Purchases: []models.Purchase{
			{ID: "PB001", Date: "2025-08-01", ItemID: "BRG001", UnitCost: 14000},
			{ID: "PB002", Date: "2025-08-10", ItemID: "BRG001", UnitCost: 15000}, // terbaru menang
			{ID: "PB003", Date: "2025-08-05", ItemID: "BRG002", UnitCost: 200000},
		},
		Expenses: []models.Expense{
			{ID: "OUT001", Date: "2025-08-12", Amount: 250000},
		},
		Contributions: []models.CapitalContribution{
			{ID: "PM001", Date: "2025-08-01", Amount: 1000000},
		},
	}

	r := Aggregate(in)

	if r.InventoryValue != 150000 {
		t.Errorf("nilai persediaan = %d, mau 150000", r.InventoryValue)
	}
	if r.CashOnHand != 200000 {
		t.Errorf("kas = %d, mau 200000", r.CashOnHand)
	}
	// Pengeluaran 250000: 200000 dari kas, 50000 dari modal
	if r.ExpenseFromCash != 200000 || r.ExpenseFromCapital != 50000 {
		t.Errorf("pengeluaran kas/modal = %d/%d, mau 200000/50000", r.ExpenseFromCash, r.ExpenseFromCapital)
	}
	if r.PurchasingCapital != 950000 {
		t.Errorf("modal belanja = %d, mau 950000", r.PurchasingCapital)
	}
	if r.CashBeforeProfit != 800000 {
		t.Errorf("kas sebelum laba = %d, mau 800000", r.CashBeforeProfit)
	}
}

func TestAggregateSplitOnlyWhenProfitPositive(t *testing.T) {
	r := Aggregate(Inputs{
		Period: "2025-08",
		SaleLines: []models.SaleLine{
			{SaleID: "PJ001", Date: "2025-08-10", Total: 10000, Profit: -500}, // jual rugi
		},
	})

	if r.OperatorShare != 0 || r.ReserveShare != 0 || r.InvestorShare != 0 {
		t.Errorf("laba negatif tetap dibagi: %+v", r)
	}
	if r.CashAfterProfit != r.CashBeforeProfit-500 {
		t.Errorf("kas setelah laba = %d, mau %d", r.CashAfterProfit, r.CashBeforeProfit-500)
	}
}
