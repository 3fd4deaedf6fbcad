// Package ident menghasilkan ID berurutan berprefix (BRG001, PB002, dst).
//
// Generator ini tidak aman untuk penulis paralel: dua insert bersamaan bisa
// menghitung ID "berikutnya" yang sama. Asumsi satu operator aktif.
package ident

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Next menghitung ID berikutnya dari daftar ID yang sudah ada: ambil suffix
// angka terbesar untuk prefix tersebut, tambah satu, format 3 digit.
// Daftar kosong menghasilkan {prefix}001.
func Next(existing []string, prefix string) string {
	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}

// NextFor mengambil ID yang sudah ada untuk satu entity lalu memanggil Next.
// Tabel ditentukan lewat struct model, kolomnya selalu "id" — tidak ada
// interpolasi nama tabel/kolom bebas.
func NextFor(db *gorm.DB, model interface{}, prefix string) (string, error) {
	var ids []string
	if err := db.Model(model).Where("id LIKE ?", prefix+"%").Pluck("id", &ids).Error; err != nil {
		return "", err
	}
	return Next(ids, prefix), nil
}
