// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/decibell/store-backend/internal/config"
	"github.com/decibell/store-backend/internal/handlers"
	"github.com/decibell/store-backend/internal/middleware"
	"github.com/decibell/store-backend/internal/repository"
	"github.com/decibell/store-backend/internal/services"
	"github.com/decibell/store-backend/internal/storage"
)

// SetupRouter wires the flat-file store, repositories, services and handlers
// into the HTTP surface.
func SetupRouter(cfg *config.Config, store *storage.Store) (*gin.Engine, error) {
	// Repositories over the CSV tables
	userRepo := repository.NewUserRepository(store)
	productRepo := repository.NewProductRepository(store)
	reviewRepo := repository.NewReviewRepository(store)
	filterRepo := repository.NewFilterRepository(store)
	visitLedger := repository.NewVisitLedger(store)

	// Services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, reviewRepo)
	reviewService := services.NewReviewService(reviewRepo, productRepo)
	filterService := services.NewFilterService(filterRepo)
	statsService := services.NewStatsService(userRepo, productRepo, visitLedger)

	uploadService, err := services.NewUploadService(cfg)
	if err != nil {
		return nil, err
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, uploadService)
	productHandler := handlers.NewProductHandler(productService, reviewService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	filterHandler := handlers.NewFilterHandler(filterService)
	adminHandler := handlers.NewAdminHandler(productService, userService, filterService, statsService, uploadService)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.BrowseRateLimit())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded files are served from local disk in development; in production
	// they come from S3/CloudFront instead.
	if cfg.Environment == "development" {
		r.Static("/uploads", cfg.Upload.Dir)
	}

	api := r.Group("/api")

	// Public storefront routes. Every GET here feeds the visit ledger.
	public := api.Group("")
	public.Use(middleware.VisitTracker(visitLedger))
	{
		public.GET("/products", productHandler.ListProducts)
		public.GET("/products/featured", productHandler.GetFeaturedProducts)
		public.GET("/products/:id", productHandler.GetProduct)
		public.GET("/products/:id/reviews", productHandler.GetProductReviews)
		public.GET("/filters", filterHandler.ListFilters)
	}

	auth := api.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
	}

	// Routes for signed-in users
	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	{
		protected.GET("/users/profile", userHandler.GetProfile)
		protected.PUT("/users/profile", middleware.WriteRateLimit(), userHandler.UpdateProfile)
		protected.POST("/users/avatar", middleware.UploadRateLimit(), userHandler.UploadAvatar)
		protected.POST("/products/:id/reviews", middleware.WriteRateLimit(), reviewHandler.CreateReview)
		protected.DELETE("/reviews/:id", middleware.WriteRateLimit(), reviewHandler.DeleteReview)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/products", adminHandler.ListProducts)
		admin.POST("/products", middleware.WriteRateLimit(), adminHandler.CreateProduct)
		admin.PUT("/products/:id", middleware.WriteRateLimit(), adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", middleware.WriteRateLimit(), adminHandler.DeleteProduct)
		admin.POST("/products/images", middleware.UploadRateLimit(), adminHandler.UploadProductImage)

		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/brands", adminHandler.ListBrands)

		admin.GET("/filters", adminHandler.ListFilters)
		admin.POST("/filters", middleware.WriteRateLimit(), adminHandler.CreateFilter)
		admin.DELETE("/filters/:id", middleware.WriteRateLimit(), adminHandler.DeleteFilter)

		admin.GET("/stats", adminHandler.Stats)
	}

	return r, nil
}
