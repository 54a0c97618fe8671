package routes

import (
	"jasit-store/controllers"
	"jasit-store/handler"
	"jasit-store/middleware"
	"jasit-store/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Dependencies struct {
	Auth     *services.AuthService
	Profiles *services.ProfileService
	Products *services.ProductService
	Cart     *services.CartService
	Checkout *services.CheckoutService
	Sessions *services.SessionStore

	Authenticator *middleware.Authenticator

	MaxUploadSize int64
	// UploadDir is served at /uploads when images are stored on local disk.
	UploadDir    string
	SecureCookie bool
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	authCtrl := controllers.NewAuthController(deps.Auth)
	profileCtrl := controllers.NewProfileController(deps.Profiles)
	productCtrl := controllers.NewProductController(deps.Products, deps.MaxUploadSize)
	cartCtrl := controllers.NewCartController(deps.Cart)
	checkoutCtrl := controllers.NewCheckoutController(deps.Checkout)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", gin.WrapF(handler.Health))

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/auth/me", deps.Authenticator.OptionalAuth(), authCtrl.Me)
	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	shop := router.Group("/")
	shop.Use(middleware.SessionMiddleware(deps.Sessions, deps.SecureCookie))
	{
		shop.GET("/cart", cartCtrl.GetCart)
		shop.POST("/cart/items", cartCtrl.AddItem)
		shop.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		shop.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		shop.DELETE("/cart", cartCtrl.ClearCart)

		shop.GET("/checkout", deps.Authenticator.OptionalAuth(), checkoutCtrl.Preview)
		shop.POST("/checkout", checkoutCtrl.Checkout)
	}

	auth := router.Group("/")
	auth.Use(deps.Authenticator.AuthMiddleware())
	{
		auth.POST("/auth/signout", authCtrl.Signout)
		auth.GET("/profile", profileCtrl.GetProfile)
		auth.PATCH("/profile", profileCtrl.UpdateProfile)
		auth.POST("/profile/change-password", profileCtrl.ChangePassword)
	}

	admin := router.Group("/admin")
	admin.Use(deps.Authenticator.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/products", productCtrl.GetAllProducts)
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)
		admin.POST("/uploads", productCtrl.UploadImage)
	}

	if deps.UploadDir != "" {
		router.Static("/uploads", deps.UploadDir)
	}
}
