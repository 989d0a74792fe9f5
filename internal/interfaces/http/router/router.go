package router

import (
	"net/http"

	"github.com/barrovivo/backend/internal/infrastructure/auth"
	"github.com/barrovivo/backend/internal/infrastructure/config"
	"github.com/barrovivo/backend/internal/interfaces/http/handler"
	"github.com/barrovivo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	loggerpkg "github.com/barrovivo/backend/internal/infrastructure/logger"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Auth      *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	Cart      *handler.CartHandler
	Checkout  *handler.CheckoutHandler
	Orders    *handler.OrderHandler
	Assistant *handler.AssistantHandler
	Reports   *handler.ReportHandler
}

// New builds the storefront route tree
func New(
	cfg *config.Config,
	jwtService *auth.JWTService,
	handlers Handlers,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(loggerpkg.GinMiddleware(logger))
	engine.Use(loggerpkg.Recovery(logger))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// public storefront
	engine.GET("/", handlers.Catalog.List)
	engine.GET("/producto/:id", handlers.Catalog.Detail)

	usuario := engine.Group("/usuario")
	{
		usuario.POST("/registro", handlers.Auth.Register)
		usuario.POST("/login", handlers.Auth.Login)
		usuario.POST("/api/chat", handlers.Assistant.Chat)
	}

	authRequired := middleware.Auth(jwtService)

	producto := engine.Group("/producto", authRequired)
	{
		producto.POST("/toggle-favorito/:id", handlers.Catalog.ToggleFavorite)
		producto.GET("/favoritos", handlers.Catalog.Favorites)
	}

	pedido := engine.Group("/pedido", authRequired)
	{
		pedido.GET("/carrito", handlers.Cart.Show)
		pedido.POST("/agregar/:id", handlers.Cart.Add)
		pedido.POST("/actualizar/:id", handlers.Cart.Update)
		pedido.POST("/remover/:id", handlers.Cart.Remove)
		pedido.GET("/checkout", handlers.Checkout.Summary)
		pedido.POST("/checkout", handlers.Checkout.Submit)
		pedido.GET("/gracias", handlers.Checkout.ThankYou)
		pedido.GET("/factura/:id", handlers.Orders.Invoice)
	}

	cuenta := engine.Group("/usuario", authRequired)
	{
		cuenta.GET("/pedidos", handlers.Orders.History)
		cuenta.GET("/reportes/ventas", middleware.RequireStaff(), handlers.Reports.Sales)
	}

	return engine
}
