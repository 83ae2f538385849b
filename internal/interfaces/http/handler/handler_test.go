package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	appstock "github.com/erp/stockflow/internal/application/stockorder"
	"github.com/erp/stockflow/internal/infrastructure/cache"
	"github.com/erp/stockflow/internal/infrastructure/persistence"
	"github.com/erp/stockflow/internal/infrastructure/persistence/models"
	"github.com/erp/stockflow/internal/interfaces/http/handler"
	"github.com/erp/stockflow/internal/interfaces/http/middleware"
	"github.com/erp/stockflow/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := middleware.SetupValidator(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code      string          `json:"code"`
		Message   string          `json:"message"`
		RequestID string          `json:"request_id"`
		Details   json.RawMessage `json:"details"`
	} `json:"error"`
}

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	database := persistence.NewDatabaseFromGorm(db)
	require.NoError(t, database.AutoMigrate())

	log := zap.NewNop()
	orders := persistence.NewGormStockOrderRepository(db)
	linked := persistence.NewGormLinkedOrderSource(db)
	creation := appstock.NewCreationService(orders, persistence.NewGormInventoryStore(db), linked, log)
	store := cache.NewInMemoryIdempotencyStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })
	creation.SetIdempotencyStore(store, time.Hour)
	transition := appstock.NewTransitionService(persistence.NewGormTransactionScope(db), appstock.NewStockMutationEngine(log), log)
	query := appstock.NewQueryService(orders, persistence.NewGormMovementRepository(db), linked, log)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.BodyLimit(64 << 10))
	engine.GET("/health", handler.NewHealthHandler(database).Check)
	router.NewRouter(engine).
		Use(middleware.ActorMiddleware(middleware.ActorConfig{})).
		Register(router.StockOrderRoutes(handler.NewStockOrderHandler(creation, transition, query), middleware.RequireActor())).
		Setup()

	return &testServer{t: t, db: db, engine: engine}
}

func (s *testServer) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf *bytes.Reader
	switch b := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// as sends the request on behalf of a default test user
func (s *testServer) as(method, path string, body any) *httptest.ResponseRecorder {
	return s.do(method, path, body, map[string]string{
		middleware.UserIDHeader:   "u-1",
		middleware.UserNameHeader: "Alice",
	})
}

func (s *testServer) seedProduct(name, qty string) uuid.UUID {
	s.t.Helper()
	p := models.ProductStockModel{
		ID:        uuid.New(),
		Name:      name,
		Quantity:  decimal.RequireFromString(qty),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(s.t, s.db.Create(&p).Error)
	return p.ID
}

func (s *testServer) seedLinkedOrder(number, customer string) uuid.UUID {
	s.t.Helper()
	o := models.LinkedOrderModel{
		ID:           uuid.New(),
		OrderNumber:  number,
		CustomerName: customer,
		Status:       "completed",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(s.t, s.db.Create(&o).Error)
	return o.ID
}

func (s *testServer) productQty(id uuid.UUID) decimal.Decimal {
	s.t.Helper()
	var p models.ProductStockModel
	require.NoError(s.t, s.db.Where("id = ?", id).First(&p).Error)
	return p.Quantity
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	env := decode(t, w)
	require.True(t, env.Success, w.Body.String())
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}
