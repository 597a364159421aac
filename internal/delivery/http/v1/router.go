package v1

import (
	"net/http"
	"time"

	"github.com/itspb-ux/AccessHire/config"
	"github.com/itspb-ux/AccessHire/internal/delivery/http/middleware"
	"github.com/itspb-ux/AccessHire/internal/delivery/http/response"
	"github.com/itspb-ux/AccessHire/internal/domain"
	"github.com/itspb-ux/AccessHire/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ListingUC  domain.ListingUsecase
	FormUC     domain.FormUsecase
	EmployerUC domain.EmployerUsecase
	HealthUC   usecase.HealthUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := v1.Group("")
	api.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(window, deps.Config.RateLimitGlobalThreshold)))
	{
		NewListingHandler(api, deps.ListingUC)
		NewFormHandler(api, deps.FormUC,
			middleware.RateLimitMiddleware(middleware.FormRateLimitConfig(window, deps.Config.RateLimitFormThreshold, deps.Config.RateLimitFormFailClosed)))
		NewEmployerHandler(api, deps.EmployerUC)
	}

	return r
}
