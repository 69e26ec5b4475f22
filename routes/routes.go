package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"waco-shop/config"
	"waco-shop/controllers"
	"waco-shop/middleware"
	"waco-shop/models"
	"waco-shop/repositories"
	"waco-shop/services"
	"waco-shop/session"
)

func SetupRoutes(router *gin.Engine) {
	store := session.NewStore(config.RedisClient, config.AppConfig.SessionTTL)
	router.Use(middleware.SessionMiddleware(store))

	emailService, err := models.NewEmailService(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPass,
		config.AppConfig.SMTPFrom,
	)
	if err != nil {
		log.Println("Email service disabled:", err)
	}

	orderRepo := repositories.NewOrderRepository()
	catalogService := services.NewCatalogService()
	authService := services.NewAuthService()
	checkoutService := services.NewCheckoutService(orderRepo, config.AppConfig.CheckoutTimeout)

	authCtrl := &controllers.AuthController{Auth: authService}
	oauthCtrl := &controllers.OAuthController{Auth: authService}
	productCtrl := &controllers.ProductController{Catalog: catalogService}
	orderCtrl := &controllers.OrderController{Orders: orderRepo, Email: emailService}
	cartCtrl := &controllers.CartController{
		Catalog:  catalogService,
		Checkout: checkoutService,
		Email:    emailService,
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/auth/google", oauthCtrl.GoogleLogin)
	router.GET("/auth/google/callback", oauthCtrl.GoogleCallback)
	router.GET("/auth/facebook", oauthCtrl.FacebookLogin)
	router.GET("/auth/facebook/callback", oauthCtrl.FacebookCallback)

	api := router.Group("/api")
	{
		api.POST("/signup", authCtrl.Signup)
		api.POST("/login", authCtrl.Login)
		api.POST("/logout", authCtrl.Logout)
		api.GET("/session-user", authCtrl.SessionUser)
		api.GET("/check-session", authCtrl.CheckSession)
		api.GET("/user", authCtrl.CurrentUser)

		api.GET("/products", productCtrl.GetProducts)
		api.GET("/categories", productCtrl.GetCategories)

		api.GET("/cart", cartCtrl.GetCart)
		api.POST("/cart/items", cartCtrl.AddItem)
		api.POST("/cart/items/decrement", cartCtrl.DecrementItem)
		api.DELETE("/cart/items/:index", cartCtrl.RemoveItem)
		api.DELETE("/cart", cartCtrl.ClearCart)
		api.POST("/checkout", cartCtrl.SubmitCheckout)

		api.GET("/orders", orderCtrl.GetOrders)

		authed := api.Group("/")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/neworder", orderCtrl.CreateOrder)
		}
	}

	router.Static("/assets", "./public/assets")
	router.StaticFile("/", "./public/index.html")
}
