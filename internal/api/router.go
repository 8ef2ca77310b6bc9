package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gonzalcbar02/store-controller-web/internal/handler"
	"github.com/gonzalcbar02/store-controller-web/internal/middleware"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	houseHandler *handler.HouseHandler,
	cabinetHandler *handler.CabinetHandler,
	productHandler *handler.ProductHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
		public.POST("/forgot-password", authHandler.ForgotPassword)
		public.POST("/reset-password", authHandler.ResetPassword)

		// The QR view resolves a cabinet and its products without a
		// session; only these two reads are exposed publicly.
		public.GET("/qr/cabinets/:code", cabinetHandler.ResolveQR)
		public.GET("/cabinets/:id", cabinetHandler.Get)
		public.GET("/products/cabinet/:cabinetId", productHandler.ListByCabinet)
	}

	// Protected API routes
	api := r.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())
	{
		api.POST("/logout", authHandler.Logout)

		api.GET("/users", userHandler.List)
		api.GET("/users/:email", userHandler.GetByEmail)
		api.PUT("/users/:id", userHandler.Update)
		api.DELETE("/users/:id", userHandler.Delete)

		api.GET("/houses/user/:userId", houseHandler.ListByUser)
		api.GET("/houses/:id", houseHandler.Get)
		api.POST("/houses", houseHandler.Create)
		api.PUT("/houses/:id", houseHandler.Update)
		api.DELETE("/houses/:id", houseHandler.Delete)

		api.GET("/cabinets/house/:houseId", cabinetHandler.ListByHouse)
		api.POST("/cabinets", cabinetHandler.Create)
		api.PUT("/cabinets/:id", cabinetHandler.Update)
		api.DELETE("/cabinets/:id", cabinetHandler.Delete)

		api.GET("/products/:id", productHandler.Get)
		api.POST("/products", productHandler.Create)
		api.PUT("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)
	}

	return r
}
