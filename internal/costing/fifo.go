// Package costing menghitung HPP (harga pokok penjualan) dengan metode FIFO.
package costing

import "math"

// Lot adalah satu lot pembelian: jumlah unit dan harga beli per unit.
// Pemanggil menyiapkan lot-lot satu barang, urut tanggal naik.
type Lot struct {
	Quantity int64
	UnitCost int64
}

// UnitCost mengkonsumsi lot dari yang paling lama: tiap lot diambil
// min(sisa, lot.Quantity) unit pada harga lot itu, berhenti saat sisa habis
// atau lot habis. Hasilnya rata-rata tertimbang, dibulatkan ke rupiah
// terdekat — bukan harga per lot.
//
// Nilai kedua adalah shortfall: unit yang tidak tertutup riwayat pembelian.
// Unit tersebut dihargai 0 (menggelembungkan laba), jadi pemanggil sebaiknya
// mencatat peringatan kalau shortfall > 0.
func UnitCost(quantitySold int64, lots []Lot) (int64, int64) {
	if quantitySold == 0 {
		return 0, 0
	}

	var totalCost int64
	remaining := quantitySold
	for _, lot := range lots {
		take := lot.Quantity
		if remaining < take {
			take = remaining
		}
		totalCost += take * lot.UnitCost
		remaining -= take
		if remaining == 0 {
			break
		}
	}

	unit := int64(math.Round(float64(totalCost) / float64(quantitySold)))
	return unit, remaining
}
