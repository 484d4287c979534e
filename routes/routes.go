package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	contactRepo := repository.NewContactRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	gateway := services.NewStubGateway(cfg.PaymentAPIKey)
	authSvc := services.NewAuthService(db, userRepo, cartRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo, userRepo, gateway, cfg.CheckoutTimeout)
	orderSvc := services.NewOrderService(db, orderRepo)
	menuSvc := services.NewMenuService(menuRepo, categoryRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	reviewSvc := services.NewReviewService(reviewRepo, menuRepo, userRepo)
	contactSvc := services.NewContactService(contactRepo)
	reportSvc := services.NewReportService(reportRepo, categoryRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	contactCtrl := controllers.NewContactController(contactSvc)
	userCtrl := controllers.NewUserController(userRepo)
	paymentCtrl := controllers.NewPaymentController(paymentRepo)
	reportCtrl := controllers.NewReportController(reportSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Catalog (public)
	r.GET("/categories", categoryCtrl.List)
	r.GET("/categories/:id", categoryCtrl.Detail)
	r.GET("/menu-items", menuCtrl.List)
	r.GET("/menu-items/:id", menuCtrl.Detail)
	r.GET("/menu-items/by-name/:name", menuCtrl.DetailByName)
	r.GET("/menu-items/:id/reviews", reviewCtrl.ListForMenuItem)

	// Contact (public write)
	r.POST("/contact", contactCtrl.Create)

	// Cart + checkout + orders (user)
	u := r.Group("/", auth)
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.DELETE("/cart/items/:menuItemId", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/checkout", checkoutCtrl.Checkout)
		u.POST("/checkout/intent", checkoutCtrl.CreateIntent)

		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/orders/:id/total", orderCtrl.Total)

		u.POST("/reviews", reviewCtrl.Create)
		u.PUT("/reviews/:id", reviewCtrl.Update)

		u.GET("/payments/:id", paymentCtrl.Detail)
	}

	// Profile
	profile := r.Group("/profile", auth)
	{
		profile.GET("/orders", orderCtrl.ListForMe)
		profile.GET("/payments", paymentCtrl.ListForMe)
	}

	// Admin
	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/users", userCtrl.List)
		admin.GET("/users/:id", userCtrl.Detail)
		admin.DELETE("/users/:id", userCtrl.Delete)

		admin.POST("/categories", categoryCtrl.Create)
		admin.PATCH("/categories/:id", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)

		admin.POST("/menu-items", menuCtrl.Create)
		admin.PATCH("/menu-items/:id", menuCtrl.Update)
		admin.PUT("/menu-items/:id/availability", menuCtrl.SetAvailability)
		admin.DELETE("/menu-items/:id", menuCtrl.Delete)

		admin.GET("/carts/:id", cartCtrl.GetItems)
		admin.POST("/carts/:id/items", cartCtrl.AddToCart)
		admin.POST("/checkout/carts/:id", checkoutCtrl.CheckoutCart)

		admin.GET("/orders", orderCtrl.ListAll)
		admin.GET("/orders/:id", orderCtrl.AdminDetail)
		admin.PUT("/orders/:id", orderCtrl.AdminUpdate)
		admin.DELETE("/orders/:id", orderCtrl.AdminDelete)

		admin.DELETE("/reviews/:id", reviewCtrl.Delete)

		admin.GET("/contact", contactCtrl.List)
		admin.DELETE("/contact/:id", contactCtrl.Delete)

		admin.DELETE("/payments/:id", paymentCtrl.Delete)

		admin.GET("/reports/summary", reportCtrl.Summary)
		admin.GET("/reports/sales/categories/:id", reportCtrl.SalesByCategory)
		admin.GET("/reports/sales/categories", reportCtrl.SalesByCategoryName)
		admin.GET("/reports/sales/months", reportCtrl.SalesByMonth)
		admin.GET("/reports/categories", reportCtrl.CategoryNames)
	}
}
