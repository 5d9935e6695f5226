// Package router wires the HTTP routes to their handlers.
package router

import (
	"musika/internal/delivery/http/middleware"
	"musika/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers that need to be registered, injected
// by Fx.
type RouterParams struct {
	fx.In

	OrderHandler      *handler.OrderHandler
	PaymentHandler    *handler.PaymentHandler
	SearchHandler     *handler.SearchHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	AssistantHandler  *handler.AssistantHandler
	ReportHandler     *handler.ReportHandler
	MultimediaHandler *handler.MultimediaHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.params.OrderHandler.CreateOrder)
		orderGroup.GET("/purchasers", r.params.OrderHandler.ListPurchasers, auth)
		orderGroup.GET("/stats", r.params.OrderHandler.GetPurchaseStats, auth)
		orderGroup.GET("/users/:id/history", r.params.OrderHandler.GetUserOrderHistory, auth)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
	}

	// The gateway calls back without credentials, so this route stays open.
	e.POST("/payments/ecocash/callback", r.params.PaymentHandler.HandleEcoCashCallback)

	searchGroup := e.Group("/search")
	{
		searchGroup.GET("", r.params.SearchHandler.Search)
		searchGroup.GET("/suggestions", r.params.SearchHandler.Suggest)
	}

	analyticsGroup := e.Group("/analytics")
	{
		analyticsGroup.POST("", r.params.AnalyticsHandler.RecordVisit)
		analyticsGroup.GET("", r.params.AnalyticsHandler.ListVisits, auth)
		analyticsGroup.GET("/summary", r.params.AnalyticsHandler.Summarize, auth)
		analyticsGroup.GET("/:id", r.params.AnalyticsHandler.GetVisit, auth)
		analyticsGroup.DELETE("/:id", r.params.AnalyticsHandler.DeleteVisit, auth)
	}

	assistantGroup := e.Group("/assistant", auth)
	{
		assistantGroup.POST("/query", r.params.AssistantHandler.Ask)
		assistantGroup.POST("/analyze", r.params.AssistantHandler.AnalyzeFile)
		assistantGroup.POST("/bulk", r.params.AssistantHandler.BulkAsk)
	}

	e.POST("/reports", r.params.ReportHandler.GenerateReport, auth)

	multimediaGroup := e.Group("/multimedia", auth)
	{
		multimediaGroup.POST("", r.params.MultimediaHandler.CreateMultimedia)
		multimediaGroup.GET("", r.params.MultimediaHandler.ListMultimedia)
		multimediaGroup.GET("/:id", r.params.MultimediaHandler.GetMultimedia)
		multimediaGroup.DELETE("/:id", r.params.MultimediaHandler.DeleteMultimedia)
	}
}
