package costing

import "testing"

func TestUnitCostSpansTwoLots(t *testing.T) {
	// 10 unit @100 + 2 unit @120 = 1240, /12 = 103.33 -> 103
	lots := []Lot{
		{Quantity: 10, UnitCost: 100},
		{Quantity: 5, UnitCost: 120},
	}

	unit, shortfall := UnitCost(12, lots)
	if unit != 103 {
		t.Errorf("unit cost = %d, mau 103", unit)
	}
	if shortfall != 0 {
		t.Errorf("shortfall = %d, mau 0", shortfall)
	}
}

func TestUnitCostZeroQuantity(t *testing.T) {
	lots := []Lot{{Quantity: 10, UnitCost: 100}}

	unit, shortfall := UnitCost(0, lots)
	if unit != 0 || shortfall != 0 {
		t.Errorf("UnitCost(0) = (%d, %d), mau (0, 0)", unit, shortfall)
	}
}

func TestUnitCostSingleLot(t *testing.T) {
	lots := []Lot{{Quantity: 10, UnitCost: 250}}

	unit, _ := UnitCost(4, lots)
	if unit != 250 {
		t.Errorf("unit cost = %d, mau 250", unit)
	}
}

func TestUnitCostExactLotBoundary(t *testing.T) {
	// Persis menghabiskan lot pertama, lot kedua tidak tersentuh
	lots := []Lot{
		{Quantity: 5, UnitCost: 100},
		{Quantity: 5, UnitCost: 999},
	}

	unit, _ := UnitCost(5, lots)
	if unit != 100 {
		t.Errorf("unit cost = %d, mau 100", unit)
	}
}

func TestUnitCostOversellReportsShortfall(t *testing.T) {
	// Riwayat hanya menutup 6 dari 10 unit: 4 unit dihargai 0
	lots := []Lot{{Quantity: 6, UnitCost: 200}}

	unit, shortfall := UnitCost(10, lots)
	if shortfall != 4 {
		t.Errorf("shortfall = %d, mau 4", shortfall)
	}
	// 6*200/10 = 120
	if unit != 120 {
		t.Errorf("unit cost = %d, mau 120", unit)
	}
}

func TestUnitCostEmptyHistory(t *testing.T) {
	unit, shortfall := UnitCost(3, nil)
	if unit != 0 {
		t.Errorf("unit cost = %d, mau 0", unit)
	}
	if shortfall != 3 {
		t.Errorf("shortfall = %d, mau 3", shortfall)
	}
}
