// Package report menyusun laporan keuangan bulanan: modal, pengeluaran,
// nilai barang, posisi kas, laba, dan bagi hasil.
package report

import (
	"sort"
	"strings"

	"waserda-backend/internal/models"
)

type Inputs struct {
	Period        string // "YYYY-MM"
	CashItemToken string // token nama barang yang dihitung sebagai kas
	Items         []models.Item
	Purchases     []models.Purchase
	SaleLines     []models.SaleLine
	Expenses      []models.Expense
	Contributions []models.CapitalContribution
}

type DailySummary struct {
	Date   string `json:"date"`
	Sales  int64  `json:"sales"`
	Profit int64  `json:"profit"`
}

type Report struct {
	Month int `json:"month"`
	Year  int `json:"year"`

	TotalCapital       int64 `json:"total_capital"`
	TotalExpense       int64 `json:"total_expense"`
	CashOnHand         int64 `json:"cash_on_hand"`
	ExpenseFromCash    int64 `json:"expense_from_cash"`
	ExpenseFromCapital int64 `json:"expense_from_capital"`
	InventoryValue     int64 `json:"inventory_value"`
	PurchasingCapital  int64 `json:"purchasing_capital"`
	CashBeforeProfit   int64 `json:"cash_before_profit"`
	CashAfterProfit    int64 `json:"cash_after_profit"`

	TotalSales  int64 `json:"total_sales"`
	TotalProfit int64 `json:"total_profit"`

	OperatorShare int64 `json:"operator_share"`
	ReserveShare  int64 `json:"reserve_share"`
	InvestorShare int64 `json:"investor_share"`

	Daily []DailySummary `json:"daily"`
}

// Aggregate menghitung laporan satu periode dari isi tabel mentah.
// Filter periode dilakukan di sini (prefix "YYYY-MM" pada kolom tanggal),
// jadi fungsinya murni dan gampang diuji dengan fixture literal.
func Aggregate(in Inputs) Report {
	var r Report

	for _, pm := range in.Contributions {
		if inPeriod(pm.Date, in.Period) {
			r.TotalCapital += pm.Amount
		}
	}

	for _, e := range in.Expenses {
		if inPeriod(e.Date, in.Period) {
			r.TotalExpense += e.Amount
		}
	}

	// Penjualan periode ini + rekap harian
	daily := map[string]*DailySummary{}
	for _, line := range in.SaleLines {
		if !inPeriod(line.Date, in.Period) {
			continue
		}
		r.TotalSales += line.Total
		r.TotalProfit += line.Profit

		d, ok := daily[line.Date]
		if !ok {
			d = &DailySummary{Date: line.Date}
			daily[line.Date] = d
		}
		d.Sales += line.Total
		d.Profit += line.Profit
	}

	r.Daily = make([]DailySummary, 0, len(daily))
	for _, d := range daily {
		r.Daily = append(r.Daily, *d)
	}
	sort.Slice(r.Daily, func(i, j int) bool { return r.Daily[i].Date < r.Daily[j].Date })

	// Harga beli terbaru per barang dalam periode: scan urut naik, entri
	// terakhir menang
	periodPurchases := make([]models.Purchase, 0, len(in.Purchases))
	for _, p := range in.Purchases {
		if inPeriod(p.Date, in.Period) {
			periodPurchases = append(periodPurchases, p)
		}
	}
	sort.Slice(periodPurchases, func(i, j int) bool {
		if periodPurchases[i].Date != periodPurchases[j].Date {
			return periodPurchases[i].Date < periodPurchases[j].Date
		}
		return periodPurchases[i].ID < periodPurchases[j].ID
	})
	lastCost := map[string]int64{}
	for _, p := range periodPurchases {
		lastCost[p.ItemID] = p.UnitCost
	}

	// Nilai stok: barang ber-token kas dihitung sebagai uang tunai,
	// sisanya nilai persediaan
	token := strings.ToUpper(in.CashItemToken)
	for _, item := range in.Items {
		subtotal := item.Stock * lastCost[item.ID]
		if token != "" && strings.Contains(strings.ToUpper(item.Name), token) {
			r.CashOnHand += subtotal
		} else {
			r.InventoryValue += subtotal
		}
	}

	// Pengeluaran ditutup dari kas dulu, sisanya makan modal
	r.ExpenseFromCash = r.TotalExpense
	if r.CashOnHand < r.ExpenseFromCash {
		r.ExpenseFromCash = r.CashOnHand
	}
	r.ExpenseFromCapital = r.TotalExpense - r.ExpenseFromCash

	r.PurchasingCapital = r.TotalCapital - r.ExpenseFromCapital
	r.CashBeforeProfit = r.PurchasingCapital - r.InventoryValue
	r.CashAfterProfit = r.CashBeforeProfit + r.TotalProfit

	r.OperatorShare, r.ReserveShare, r.InvestorShare = Split(r.TotalProfit)

	return r
}

func inPeriod(date, period string) bool {
	return strings.HasPrefix(date, period)
}
