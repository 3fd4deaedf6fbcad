package notify

import (
	"fmt"
	"strings"
)

type ReceiptItem struct {
	Name     string
	Quantity int64
	Price    int64
}

// FormatReceipt menyusun teks nota untuk dikirim via WA: header, tanggal,
// pelanggan, catatan, daftar belanja per baris, total, penutup.
func FormatReceipt(date, customerName, number string, items []ReceiptItem, total int64, note string) string {
	lines := []string{
		"🧾 *NOTA WASERDA*",
		fmt.Sprintf("Tanggal: %s", date),
		fmt.Sprintf("Pelanggan: %s (%s)", customerName, number),
		fmt.Sprintf("Catatan: %s", note),
		"",
		"Daftar Belanja:",
	}

	for _, item := range items {
		subtotal := item.Quantity * item.Price
		lines = append(lines, fmt.Sprintf("- %s x%d @%s = %s",
			item.Name, item.Quantity, FormatAmount(item.Price), FormatAmount(subtotal)))
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Total: Rp%s", FormatAmount(total)))
	lines = append(lines, "Terima kasih 🙏")

	return strings.Join(lines, "\n")
}

// FormatAmount: pemisah ribuan gaya Indonesia (12500 -> "12.500").
func FormatAmount(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
