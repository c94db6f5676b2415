package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/application/ledger"
	requestapp "github.com/stockledger/backend/internal/application/request"
	stockapp "github.com/stockledger/backend/internal/application/stock"
	"github.com/stockledger/backend/internal/domain/identity"
	"github.com/stockledger/backend/internal/domain/stock"
	"github.com/stockledger/backend/internal/infrastructure/persistence"
	"github.com/stockledger/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

const roleHeader = "X-Test-Role"

var (
	aliceID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	bobID   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

// withPrincipal stands in for JWTAuth. X-Test-User selects bob instead of
// alice; X-Test-Role sets the role.
func withPrincipal(c *gin.Context) {
	p := identity.Principal{UserID: aliceID, Name: "Alice", Role: identity.RoleAdmin}
	if c.GetHeader("X-Test-User") == "bob" {
		p = identity.Principal{UserID: bobID, Name: "Bob", Role: identity.RoleUser}
	}
	if role := c.GetHeader(roleHeader); role != "" {
		p.Role = identity.Role(role)
	}
	c.Set(middleware.JWTPrincipalKey, p)
	c.Next()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(persistence.Models()...))
	return db
}

type testAPI struct {
	engine *gin.Engine
}

func newTestAPI(t *testing.T, source stock.Source) *testAPI {
	t.Helper()
	db := newTestDB(t)
	productRepo := persistence.NewGormProductRepository(db)
	shopRepo := persistence.NewGormShopRepository(db)
	purchaseRepo := persistence.NewGormPurchaseRepository(db)
	saleRepo := persistence.NewGormSaleRepository(db)

	catalog := stockapp.NewCatalogService(productRepo, shopRepo, zap.NewNop())
	ledgerSvc := ledger.NewLedgerService(persistence.NewGormTransactionScope(db), purchaseRepo, saleRepo, source)
	requests := requestapp.NewService(persistence.NewGormRequestedProductRepository(db), zap.NewNop())

	products := NewProductHandler(catalog)
	shop := NewShopHandler(catalog, ledgerSvc)
	purchases := NewPurchaseHandler(ledgerSvc)
	sales := NewSaleHandler(ledgerSvc)
	reqs := NewRequestedProductHandler(requests)

	engine := gin.New()
	api := engine.Group("/api/v1", withPrincipal)
	api.POST("/products", products.Create)
	api.GET("/products", products.List)
	api.GET("/products/:id", products.Get)
	api.PUT("/products/:id", products.Update)
	api.DELETE("/products/:id", products.Delete)
	api.POST("/purchases", purchases.Create)
	api.GET("/purchases", purchases.List)
	api.GET("/purchases/:id", purchases.Get)
	api.DELETE("/purchases/:id", purchases.Delete)
	api.POST("/shop", shop.Transfer)
	api.GET("/shop", shop.List)
	api.PUT("/shop/:id", shop.Update)
	api.DELETE("/shop/:id", shop.Delete)
	api.POST("/sales", sales.Create)
	api.GET("/sales", sales.List)
	api.GET("/sales/range", sales.ListRange)
	api.GET("/sales/:id", sales.Get)
	api.PUT("/sales/:id", sales.Update)
	api.DELETE("/sales/:id", sales.Delete)
	api.POST("/requested-products", reqs.Create)
	api.GET("/requested-products", reqs.List)
	api.PUT("/requested-products/:id", reqs.Update)
	api.DELETE("/requested-products/:id", reqs.Delete)
	return &testAPI{engine: engine}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *testAPI) do(t *testing.T, method, path string, body any, headers ...string) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

// seedProduct creates a product and buys quantity of it
func (a *testAPI) seedProduct(t *testing.T, name string, quantity int64) stock.Product {
	t.Helper()
	status, env := a.do(t, http.MethodPost, "/api/v1/products", gin.H{
		"name": name, "buying_price": 8.5, "selling_price": 10,
	})
	require.Equal(t, http.StatusCreated, status)
	product := decodeData[stock.Product](t, env)

	if quantity > 0 {
		status, _ = a.do(t, http.MethodPost, "/api/v1/purchases", gin.H{
			"product_id": product.ID, "quantity": quantity,
		})
		require.Equal(t, http.StatusCreated, status)
		product.Quantity = quantity
	}
	return product
}
