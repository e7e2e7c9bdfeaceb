// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"creatorhub/config"
	"creatorhub/internal/delivery/api/middleware"
	"creatorhub/internal/delivery/api/router/handler"
	"creatorhub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OnboardingHandler *handler.OnboardingHandler
	ItemHandler       *handler.ItemHandler
	ProfileHandler    *handler.ProfileHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	BillingHandler    *handler.BillingHandler
	UploadHandler     *handler.UploadHandler
	PublicHandler     *handler.PublicHandler
	AdminHandler      *handler.AdminHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Registry
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	onboardingHandler *handler.OnboardingHandler
	itemHandler       *handler.ItemHandler
	profileHandler    *handler.ProfileHandler
	analyticsHandler  *handler.AnalyticsHandler
	billingHandler    *handler.BillingHandler
	uploadHandler     *handler.UploadHandler
	publicHandler     *handler.PublicHandler
	adminHandler      *handler.AdminHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Registry
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		onboardingHandler: params.OnboardingHandler,
		itemHandler:       params.ItemHandler,
		profileHandler:    params.ProfileHandler,
		analyticsHandler:  params.AnalyticsHandler,
		billingHandler:    params.BillingHandler,
		uploadHandler:     params.UploadHandler,
		publicHandler:     params.PublicHandler,
		adminHandler:      params.AdminHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	api := e.Group("/api")

	// Public routes
	api.GET("/public/:username", r.publicHandler.GetProfileJSON)
	api.POST("/analytics/track", r.analyticsHandler.Track, middleware.NewTrackRateLimiter(r.config))
	api.POST("/webhook", r.billingHandler.Webhook)

	// Authenticated, not necessarily onboarded
	authenticated := api.Group("", r.authMiddleware.Authenticate)
	{
		authenticated.GET("/onboarding", r.onboardingHandler.GetStatus)
		authenticated.POST("/onboarding", r.onboardingHandler.Onboard)
	}

	// Dashboard routes
	dashboard := api.Group("", r.authMiddleware.Authenticate, r.authMiddleware.RequireOnboarded)
	{
		dashboard.GET("/products", r.itemHandler.ListProducts)
		dashboard.POST("/products", r.itemHandler.CreateProduct)
		dashboard.PUT("/products/:id", r.itemHandler.UpdateProduct)
		dashboard.DELETE("/products/:id", r.itemHandler.DeleteProduct)

		dashboard.GET("/coupons", r.itemHandler.ListCoupons)
		dashboard.POST("/coupons", r.itemHandler.CreateCoupon)
		dashboard.PUT("/coupons/:id", r.itemHandler.UpdateCoupon)
		dashboard.DELETE("/coupons/:id", r.itemHandler.DeleteCoupon)

		dashboard.GET("/partners", r.itemHandler.ListPartners)
		dashboard.POST("/partners", r.itemHandler.CreatePartner)
		dashboard.PUT("/partners/:id", r.itemHandler.UpdatePartner)
		dashboard.DELETE("/partners/:id", r.itemHandler.DeletePartner)

		dashboard.PUT("/reorder", r.itemHandler.Reorder)

		dashboard.GET("/profile", r.profileHandler.GetProfile)
		dashboard.PUT("/profile", r.profileHandler.UpdateProfile)
		dashboard.GET("/profile/qr", r.profileHandler.GetQRCode)
		dashboard.PUT("/settings", r.profileHandler.UpdateSettings)
		dashboard.GET("/themes", r.profileHandler.ListThemes)

		dashboard.GET("/analytics/summary", r.analyticsHandler.Summary)

		dashboard.GET("/plan", r.billingHandler.GetPlan)
		dashboard.GET("/stripe", r.billingHandler.CreateSession)

		dashboard.POST("/uploads", r.uploadHandler.Upload)
	}

	// Super-admin routes
	admin := api.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	{
		admin.GET("/users", r.adminHandler.ListUsers)
	}

	e.GET("/uploads/*", r.uploadHandler.Serve)

	// Public page, registered last; static routes win over the parameter.
	e.GET("/:username", r.publicHandler.GetProfilePage)
}
