package routes

import (
	"github.com/creativeyMedia/fwkantine/configs"
	"github.com/creativeyMedia/fwkantine/controllers"
	"github.com/creativeyMedia/fwkantine/middlewares"
	"github.com/creativeyMedia/fwkantine/repository"
	"github.com/creativeyMedia/fwkantine/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	empRepo := repository.NewEmployeeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	sponsorRepo := repository.NewSponsorshipRepository(db)

	// Services
	ledger := services.NewLedgerService(db, empRepo)
	orders := services.NewOrderService(db, orderRepo, menuRepo, ledger)
	pricing := services.NewPricingService(db, orderRepo, menuRepo, sponsorRepo, ledger)
	sponsors := services.NewSponsorService(db, orderRepo, sponsorRepo, empRepo, ledger)
	payments := services.NewPaymentService(db, paymentRepo, ledger)
	migration := services.NewMigrationService(db, empRepo, ledger)
	summary := services.NewSummaryService(db, orderRepo, empRepo)
	auth := services.NewAuthService(empRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(auth)
	orderCtrl := controllers.NewOrderController(orders)
	balanceCtrl := controllers.NewBalanceController(ledger, summary)
	menuCtrl := controllers.NewMenuController(menuRepo)
	adminCtrl := controllers.NewAdminController(orders, pricing, sponsors, payments, migration)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Employee surface
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/orders", orderCtrl.Submit)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.DELETE("/orders/:id", orderCtrl.Cancel)
		u.GET("/profile/orders", orderCtrl.ListForMe)
		u.GET("/employees/:id/balances", balanceCtrl.Balances)
		u.GET("/departments/:id/summary", balanceCtrl.DailySummary)
		u.GET("/menu", menuCtrl.Catalog)
	}

	// Admin surface
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/employees", authCtrl.CreateEmployee)
		admin.DELETE("/orders/:id", adminCtrl.DeleteOrder)
		admin.PUT("/prices", adminCtrl.UpdatePrice)
		admin.GET("/prices/history", adminCtrl.PriceHistory)
		admin.POST("/sponsorships", adminCtrl.Sponsor)
		admin.POST("/payments", adminCtrl.RecordPayment)
		admin.GET("/employees/:id/payment-logs", adminCtrl.PaymentLogs)
		admin.PUT("/employees/:id/department", adminCtrl.MoveEmployee)
		admin.POST("/menu/items", menuCtrl.CreateItem)
		admin.DELETE("/menu/items/:id", menuCtrl.DeleteItem)
		admin.POST("/menu/toppings", menuCtrl.CreateTopping)
	}
}
