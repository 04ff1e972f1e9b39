package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medlmo/gcpRSM/config"
	"github.com/medlmo/gcpRSM/internal/api/handler"
	"github.com/medlmo/gcpRSM/internal/api/middleware"
	"github.com/medlmo/gcpRSM/internal/authz"
	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup builds the Gin engine. Everything under /api except the auth
// group requires a live session; mutations additionally pass the
// authorization policy, which runs before the handler so a caller
// without the permission gets 403 even for a nonexistent row.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	authSvc service.AuthService,
	policy *authz.Policy,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Session gateway: no session middleware here, the handlers
		// read the cookie themselves so login can rotate it and me can
		// answer 401 instead of being rejected upstream.
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", h.Auth.Me)
		}

		authorized := api.Group("")
		authorized.Use(middleware.SessionAuth(authSvc, cfg.Session.CookieName))
		{
			// User management: administrators only, reads included.
			users := authorized.Group("/users")
			users.Use(middleware.RequireAdmin())
			{
				users.GET("", h.User.List)
				users.GET("/:id", h.User.Get)
				users.POST("", h.User.Create)
				users.PATCH("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Delete)
			}

			tenders := authorized.Group("/tenders")
			{
				tenders.GET("", h.Tender.List)
				tenders.GET("/:id", h.Tender.Get)
				tenders.POST("", middleware.RequirePermission(policy, authz.ActionAdd, authz.KindTender), h.Tender.Create)
				tenders.PATCH("/:id", middleware.RequirePermission(policy, authz.ActionEdit, authz.KindTender), h.Tender.Update)
				tenders.DELETE("/:id", middleware.RequirePermission(policy, authz.ActionDelete, authz.KindTender), h.Tender.Delete)
			}

			suppliers := authorized.Group("/suppliers")
			{
				suppliers.GET("", h.Supplier.List)
				suppliers.GET("/:id", h.Supplier.Get)
				suppliers.POST("", middleware.RequirePermission(policy, authz.ActionAdd, authz.KindSupplier), h.Supplier.Create)
				suppliers.PATCH("/:id", middleware.RequirePermission(policy, authz.ActionEdit, authz.KindSupplier), h.Supplier.Update)
				suppliers.DELETE("/:id", middleware.RequirePermission(policy, authz.ActionDelete, authz.KindSupplier), h.Supplier.Delete)
			}

			bids := authorized.Group("/bids")
			{
				bids.GET("", h.Bid.List)
				bids.GET("/:id", h.Bid.Get)
				bids.POST("", middleware.RequirePermission(policy, authz.ActionAdd, authz.KindBid), h.Bid.Create)
				bids.PATCH("/:id", middleware.RequirePermission(policy, authz.ActionEdit, authz.KindBid), h.Bid.Update)
				bids.DELETE("/:id", middleware.RequirePermission(policy, authz.ActionDelete, authz.KindBid), h.Bid.Delete)
			}

			contracts := authorized.Group("/contracts")
			{
				contracts.GET("", h.Contract.List)
				contracts.GET("/:id", h.Contract.Get)
				contracts.POST("", middleware.RequirePermission(policy, authz.ActionAdd, authz.KindContract), h.Contract.Create)
				contracts.PATCH("/:id", middleware.RequirePermission(policy, authz.ActionEdit, authz.KindContract), h.Contract.Update)
				contracts.DELETE("/:id", middleware.RequirePermission(policy, authz.ActionDelete, authz.KindContract), h.Contract.Delete)
				contracts.POST("/:id/penalties/recalculate", middleware.RequirePermission(policy, authz.ActionEdit, authz.KindContract), h.Contract.RecalculatePenalties)
			}

			serviceOrders := authorized.Group("/service-orders")
			{
				serviceOrders.GET("", h.ServiceOrder.List)
				serviceOrders.GET("/:id", h.ServiceOrder.Get)
				serviceOrders.POST("", middleware.RequirePermission(policy, authz.ActionAdd, authz.KindServiceOrder), h.ServiceOrder.Create)
				serviceOrders.PATCH("/:id", middleware.RequirePermission(policy, authz.ActionEdit, authz.KindServiceOrder), h.ServiceOrder.Update)
				serviceOrders.DELETE("/:id", middleware.RequirePermission(policy, authz.ActionDelete, authz.KindServiceOrder), h.ServiceOrder.Delete)
			}

			amendments := authorized.Group("/amendments")
			{
				amendments.GET("", h.Amendment.List)
				amendments.GET("/:id", h.Amendment.Get)
				amendments.POST("", middleware.RequirePermission(policy, authz.ActionAdd, authz.KindAmendment), h.Amendment.Create)
				amendments.PATCH("/:id", middleware.RequirePermission(policy, authz.ActionEdit, authz.KindAmendment), h.Amendment.Update)
				amendments.DELETE("/:id", middleware.RequirePermission(policy, authz.ActionDelete, authz.KindAmendment), h.Amendment.Delete)
			}

			invoices := authorized.Group("/invoices")
			{
				invoices.GET("", h.Invoice.List)
				invoices.GET("/:id", h.Invoice.Get)
				invoices.POST("", middleware.RequirePermission(policy, authz.ActionAdd, authz.KindInvoice), h.Invoice.Create)
				invoices.PATCH("/:id", middleware.RequirePermission(policy, authz.ActionEdit, authz.KindInvoice), h.Invoice.Update)
				invoices.DELETE("/:id", middleware.RequirePermission(policy, authz.ActionDelete, authz.KindInvoice), h.Invoice.Delete)
			}

			// Authenticated but not permission-gated by resource kind.
			notifications := authorized.Group("/notifications")
			{
				notifications.GET("/:userId", h.Notification.ListByUser)
				notifications.POST("", h.Notification.Create)
				notifications.PATCH("/:id/read", h.Notification.MarkRead)
				notifications.DELETE("/:id", h.Notification.Delete)
			}

			authorized.GET("/dashboard/stats", h.Dashboard.Stats)

			export := authorized.Group("/export")
			{
				export.GET("/contracts", h.Export.Contracts)
				export.GET("/deadlines", h.Export.Deadlines)
			}
		}
	}

	return r
}
