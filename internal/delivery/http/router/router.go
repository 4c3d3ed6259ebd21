// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tapadmin/internal/delivery/http/middleware"
	"tapadmin/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdminHandler      *handler.AdminHandler
	MerchantHandler   *handler.MerchantHandler
	CustomerHandler   *handler.CustomerHandler
	RewardHandler     *handler.RewardHandler
	ProgramHandler    *handler.ProgramHandler
	MembershipHandler *handler.MembershipHandler
	JobHandler        *handler.JobHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	admins      *handler.AdminHandler
	merchants   *handler.MerchantHandler
	customers   *handler.CustomerHandler
	rewards     *handler.RewardHandler
	programs    *handler.ProgramHandler
	memberships *handler.MembershipHandler
	jobs        *handler.JobHandler
	auth        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		admins:      params.AdminHandler,
		merchants:   params.MerchantHandler,
		customers:   params.CustomerHandler,
		rewards:     params.RewardHandler,
		programs:    params.ProgramHandler,
		memberships: params.MembershipHandler,
		jobs:        params.JobHandler,
		auth:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.admins.Login)
		authGroup.POST("/refresh", r.admins.Refresh)
	}

	// Everything below is the authenticated console API.
	api := e.Group("/api")
	api.Use(r.auth.Authenticate)
	api.Use(r.auth.RequireRole("admin"))

	merchantGroup := api.Group("/merchants")
	{
		merchantGroup.GET("", r.merchants.List)
		merchantGroup.POST("", r.merchants.Create)
		merchantGroup.DELETE("", r.merchants.BulkDelete)
		merchantGroup.DELETE("/all", r.merchants.DeleteAll)
		merchantGroup.GET("/:id", r.merchants.Get)
		merchantGroup.PATCH("/:id/field", r.merchants.UpdateField)
		merchantGroup.DELETE("/:id", r.merchants.Delete)
		merchantGroup.POST("/:id/assets/:kind", r.merchants.UploadAsset)
		merchantGroup.GET("/:id/join-qr", r.merchants.JoinQR)

		merchantGroup.POST("/:id/programs/coffee", r.programs.CreateCoffeeProgram)
		merchantGroup.POST("/:id/programs/voucher", r.programs.CreateVoucherProgram)
		merchantGroup.POST("/:id/programs/transaction", r.programs.CreateTransactionReward)
		merchantGroup.POST("/:id/programs/cashback", r.programs.CreateCashbackProgram)
		merchantGroup.POST("/:id/programs/introductory", r.programs.CreateIntroductoryReward)
		merchantGroup.POST("/:id/programs/custom", r.programs.CreateCustomReward)
		merchantGroup.POST("/:id/programs/network", r.programs.CreateNetworkReward)

		merchantGroup.GET("/:id/tiers", r.memberships.ListTiers)
		merchantGroup.PUT("/:id/tiers", r.memberships.SaveTier)
		merchantGroup.DELETE("/:id/tiers/:tierId", r.memberships.DeleteTier)
		merchantGroup.POST("/:id/tiers/recalculate", r.memberships.RecalculateTiers)
	}

	customerGroup := api.Group("/customers")
	{
		customerGroup.GET("", r.customers.List)
		customerGroup.GET("/:id", r.customers.Get)
		customerGroup.PATCH("/:id/field", r.customers.UpdateField)
		customerGroup.DELETE("/:id", r.customers.Delete)
	}

	// Reward copies are addressed by collection path, which contains
	// slashes, so mutations travel in request bodies.
	rewardGroup := api.Group("/rewards")
	{
		rewardGroup.GET("", r.rewards.List)
		rewardGroup.PATCH("/field", r.rewards.UpdateField)
		rewardGroup.POST("/delete", r.rewards.Delete)
		rewardGroup.POST("/bulk-delete", r.rewards.BulkDelete)
	}

	jobGroup := api.Group("/jobs")
	{
		jobGroup.GET("", r.jobs.List)
		jobGroup.POST("", r.jobs.Create)
		jobGroup.GET("/:id", r.jobs.Get)
		jobGroup.PUT("/:id", r.jobs.Update)
		jobGroup.DELETE("/:id", r.jobs.Delete)
		jobGroup.POST("/:id/run", r.jobs.Run)
	}

	api.GET("/enquiries", r.admins.ListEnquiries)
}
