package report

import "math"

// Split membagi laba bulanan: 30% operator, 35% cadangan kas, sisanya
// pemodal. Bagian pemodal dihitung sebagai sisa (bukan dibulatkan sendiri)
// supaya ketiga bagian selalu persis berjumlah total laba.
// Laba nol atau negatif tidak dibagi.
func Split(totalProfit int64) (operator, reserve, investor int64) {
	if totalProfit <= 0 {
		return 0, 0, 0
	}

	operator = int64(math.Round(float64(totalProfit) * 0.30))
	reserve = int64(math.Round(float64(totalProfit) * 0.35))
	investor = totalProfit - operator - reserve
	return operator, reserve, investor
}
