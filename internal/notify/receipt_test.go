package notify

import (
	"strings"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{12500, "12.500"},
		{1240000, "1.240.000"},
		{-7500, "-7.500"},
	}

	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%d) = %s, mau %s", tc.in, got, tc.want)
		}
	}
}

func TestFormatReceiptLines(t *testing.T) {
	items := []ReceiptItem{
		{Name: "Gula 1kg", Quantity: 2, Price: 15000},
		{Name: "Minyak Goreng", Quantity: 1, Price: 18000},
	}

	nota := FormatReceipt("2025-08-28", "Bu Siti", "6281234567890", items, 48000, "antar sore")

	wantParts := []string{
		"NOTA WASERDA",
		"Tanggal: 2025-08-28",
		"Pelanggan: Bu Siti (6281234567890)",
		"Catatan: antar sore",
		"- Gula 1kg x2 @15.000 = 30.000",
		"- Minyak Goreng x1 @18.000 = 18.000",
		"Total: Rp48.000",
		"Terima kasih",
	}
	for _, part := range wantParts {
		if !strings.Contains(nota, part) {
			t.Errorf("nota tidak memuat %q:\n%s", part, nota)
		}
	}
}
