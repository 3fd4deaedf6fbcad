package main

import (
	"log"
	"strings"

	"waserda-backend/internal/audit"
	"waserda-backend/internal/auth"
	"waserda-backend/internal/capital"
	"waserda-backend/internal/config"
	"waserda-backend/internal/customer"
	"waserda-backend/internal/database"
	"waserda-backend/internal/expense"
	"waserda-backend/internal/inventory"
	"waserda-backend/internal/notify"
	"waserda-backend/internal/purchasing"
	"waserda-backend/internal/report"
	"waserda-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	wa := notify.NewClient(cfg.WAGatewayURL)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Error tak terduga:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Terjadi kesalahan di server",
			})
		},
	})

	// CORS origins dari string dipisah koma
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-operator", auth.RegisterOperatorHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Barang
	protected.Get("/items", inventory.ListItemsHandler())
	protected.Get("/items/options", inventory.ItemOptionsHandler())
	protected.Post("/items", inventory.CreateItemHandler())
	protected.Put("/items/:id", inventory.UpdateItemHandler())

	// Pembelian
	protected.Get("/purchases", purchasing.ListPurchasesHandler())
	protected.Post("/purchases", purchasing.CreatePurchaseHandler())
	protected.Put("/purchases/:id", purchasing.UpdatePurchaseHandler())

	// Penjualan
	protected.Get("/sales", sales.ListSalesHandler())
	protected.Get("/sales/form-data", sales.FormDataHandler())
	protected.Get("/sales/:id", sales.GetSaleHandler())
	protected.Post("/sales", sales.CreateSaleHandler(wa))
	protected.Put("/sales/:id", sales.UpdateSaleHandler(wa))

	// Pelanggan
	protected.Get("/customers", customer.ListCustomersHandler())
	protected.Post("/customers", customer.CreateCustomerHandler())
	protected.Put("/customers/:id", customer.UpdateCustomerHandler())

	// Pengeluaran
	protected.Get("/expenses", expense.ListExpensesHandler())
	protected.Get("/expenses/categories", expense.ExpenseCategoriesHandler())
	protected.Post("/expenses", expense.CreateExpenseHandler())
	protected.Put("/expenses/:id", expense.UpdateExpenseHandler())

	// Pemodal
	protected.Get("/capital", capital.ListContributionsHandler())
	protected.Post("/capital", capital.CreateContributionHandler())
	protected.Put("/capital/:id", capital.UpdateContributionHandler())

	// Laporan bulanan
	protected.Get("/report/monthly", report.MonthlyReportHandler(cfg))

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server jalan di port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
