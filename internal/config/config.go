package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort      string
	DatabasePath  string // path file SQLite, satu file untuk seluruh toko
	JWTSecret     string
	CORSOrigins   string
	WAGatewayURL  string // endpoint gateway WhatsApp untuk kirim nota
	CashItemToken string // token nama barang yang dianggap kas (konvensi "KAS")
}

func Load() *Config {
	// .env opsional, kalau tidak ada pakai environment langsung
	if err := godotenv.Load(); err != nil {
		log.Println("File .env tidak ditemukan, pakai environment variable saja")
	}

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "pos.db"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		WAGatewayURL:  getEnv("WA_GATEWAY_URL", ""),
		CashItemToken: getEnv("CASH_ITEM_TOKEN", "KAS"),
	}

	// Pengecekan keamanan untuk production
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] Environment variable JWT_SECRET belum di-set! Wajib diisi.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET minimal 32 karakter! Risiko keamanan.")
	}
	if cfg.WAGatewayURL == "" {
		log.Println("[WARN] WA_GATEWAY_URL kosong, nota WhatsApp tidak akan terkirim.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS masih nilai default, set domain sendiri untuk production.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
