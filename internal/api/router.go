package api

import (
	"net/http"

	"github.com/TanyaSoni29/Revolut-Payment-Integration/config"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/docs"
	paymentRoutes "github.com/TanyaSoni29/Revolut-Payment-Integration/internal/api/payment"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/middleware"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/payment"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/payment/revolut"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const WelcomeMessage = "Welcome to the Revolut Payment Integration Server!"

// NewRouter wires the Revolut driver built from cfg into the HTTP routes.
func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewRouterWithDriver(cfg, revolut.NewRevolutDriver(cfg)), nil
}

// NewRouterWithDriver builds the router around an already configured driver.
func NewRouterWithDriver(cfg *config.Config, driver payment.Driver, opts ...services.Option) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// Configure CORS
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		// "*" does not cover Authorization in browsers, so it is listed too.
		AllowHeaders:  []string{"*", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        300, // Maximum age for preflight requests
	}
	if len(cfg.CORSAllowOrigins) == 0 || (len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	router.Use(cors.New(corsConfig))

	// Swagger
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, WelcomeMessage)
	})

	service := services.NewPaymentService(driver, opts...)
	handler := paymentRoutes.NewHandler(service)

	apiGroup := router.Group("/api")
	{
		paymentRoutes.RegisterRoutes(apiGroup, handler)
	}

	return router
}
