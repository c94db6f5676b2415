package router

import (
	"github.com/gin-gonic/gin"
	"github.com/stockledger/backend/internal/domain/identity"
	"github.com/stockledger/backend/internal/interfaces/http/handler"
	"github.com/stockledger/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers are the resource handlers served by the API
type Handlers struct {
	Health           *handler.HealthHandler
	Product          *handler.ProductHandler
	Shop             *handler.ShopHandler
	Purchase         *handler.PurchaseHandler
	Sale             *handler.SaleHandler
	RequestedProduct *handler.RequestedProductHandler
	User             *handler.UserHandler
	Report           *handler.ReportHandler
}

// Guards are the middleware protecting the API
type Guards struct {
	// Auth rejects requests without a valid session
	Auth gin.HandlerFunc
	// OptionalAuth identifies the caller when possible
	OptionalAuth gin.HandlerFunc
	// Credentials throttles the public register and login endpoints; may be nil
	Credentials gin.HandlerFunc
	// Authenticated runs after Auth on every protected route; may be empty
	Authenticated []gin.HandlerFunc
	// Idempotency guards ledger writes against retried requests; may be nil
	Idempotency gin.HandlerFunc
	Logger      *zap.Logger
}

// StockLedgerRoutes builds the route groups of the stock ledger API. Every
// protected route names the capability it needs.
func StockLedgerRoutes(h Handlers, g Guards) []RouteRegistrar {
	capCfg := middleware.CapabilityConfig{Logger: g.Logger}
	need := func(c identity.Capability) gin.HandlerFunc {
		return middleware.RequireCapabilityWithConfig(capCfg, c)
	}
	protected := append([]gin.HandlerFunc{g.Auth}, g.Authenticated...)
	withAuth := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		chain := make([]gin.HandlerFunc, 0, len(protected)+len(handlers))
		return append(append(chain, protected...), handlers...)
	}
	once := func(c identity.Capability, h gin.HandlerFunc) []gin.HandlerFunc {
		if g.Idempotency == nil {
			return []gin.HandlerFunc{need(c), h}
		}
		return []gin.HandlerFunc{need(c), g.Idempotency, h}
	}
	public := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if g.Credentials == nil {
			return handlers
		}
		return append([]gin.HandlerFunc{g.Credentials}, handlers...)
	}

	health := NewDomainGroup("health", "/health").
		GET("", h.Health.Health)

	products := NewDomainGroup("products", "/products").Use(protected...).
		POST("", need(identity.CapStockWrite), h.Product.Create).
		GET("", need(identity.CapStockRead), h.Product.List).
		GET("/:id", need(identity.CapStockRead), h.Product.Get).
		PUT("/:id", need(identity.CapStockWrite), h.Product.Update).
		DELETE("/:id", need(identity.CapStockWrite), h.Product.Delete)

	purchases := NewDomainGroup("purchases", "/purchases").Use(protected...).
		POST("", once(identity.CapLedgerPurchase, h.Purchase.Create)...).
		GET("", need(identity.CapStockRead), h.Purchase.List).
		GET("/:id", need(identity.CapStockRead), h.Purchase.Get).
		DELETE("/:id", need(identity.CapLedgerAdjust), h.Purchase.Delete)

	shop := NewDomainGroup("shop", "/shop").Use(protected...).
		POST("", once(identity.CapLedgerTransfer, h.Shop.Transfer)...).
		GET("", need(identity.CapStockRead), h.Shop.List).
		PUT("/:id", need(identity.CapStockWrite), h.Shop.Update).
		DELETE("/:id", need(identity.CapStockWrite), h.Shop.Delete)

	sales := NewDomainGroup("sales", "/sales").Use(protected...).
		POST("", once(identity.CapLedgerSell, h.Sale.Create)...).
		GET("", need(identity.CapStockRead), h.Sale.List).
		GET("/range", need(identity.CapStockRead), h.Sale.ListRange).
		GET("/:id", need(identity.CapStockRead), h.Sale.Get).
		PUT("/:id", need(identity.CapLedgerAdjust), h.Sale.Update).
		DELETE("/:id", need(identity.CapLedgerAdjust), h.Sale.Delete)

	// Ownership is checked by the request service
	requests := NewDomainGroup("requested-products", "/requested-products").Use(protected...).
		POST("", once(identity.CapRequestsCreate, h.RequestedProduct.Create)...).
		GET("", need(identity.CapRequestsCreate), h.RequestedProduct.List).
		PUT("/:id", need(identity.CapRequestsCreate), h.RequestedProduct.Update).
		DELETE("/:id", need(identity.CapRequestsCreate), h.RequestedProduct.Delete)

	users := NewDomainGroup("users", "/users").
		POST("", public(h.User.Register)...).
		POST("/auth", public(h.User.Login)...).
		POST("/logout", g.OptionalAuth, h.User.Logout).
		GET("/profile", withAuth(h.User.GetProfile)...).
		PUT("/profile", withAuth(h.User.UpdateProfile)...).
		GET("/admin/users", withAuth(need(identity.CapUsersList), h.User.ListUsers)...).
		DELETE("/:id", withAuth(need(identity.CapUsersDelete), h.User.DeleteUser)...)

	reports := NewDomainGroup("reports", "/reports").Use(protected...).
		GET("/summary", need(identity.CapReportsRead), h.Report.Summary).
		GET("/summary.pdf", need(identity.CapReportsRead), h.Report.SummaryPDF).
		POST("/archive", need(identity.CapReportsRead), h.Report.Archive)

	return []RouteRegistrar{health, products, purchases, shop, sales, requests, users, reports}
}
