package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"privfinos/internal/logger"
	"privfinos/internal/middleware"
	"privfinos/internal/services"
	"privfinos/internal/testutil"
	"privfinos/internal/validator"
)

// testApp holds the full request-handling stack for handler tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "")
	validator.Register()
}

// setupApp builds the router with real services over an isolated in-memory
// database, mirroring the wiring in cmd/api.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	categoryHandler := NewCategoryHandler(services.NewCategoryService(db))
	accountHandler := NewAccountHandler(services.NewAccountService(db))
	transactionHandler := NewTransactionHandler(services.NewTransactionService(db))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	api := router.Group("/api")

	categories := api.Group("/categories")
	categories.GET("", categoryHandler.GetAll)
	categories.GET("/:id", categoryHandler.GetByID)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)
	categories.DELETE("/:id/hard", categoryHandler.HardDelete)

	accounts := api.Group("/accounts")
	accounts.GET("", accountHandler.GetAll)
	accounts.GET("/balance/total", accountHandler.GetTotalBalance)
	accounts.GET("/:id", accountHandler.GetByID)
	accounts.GET("/:id/balance", accountHandler.GetBalance)
	accounts.POST("", accountHandler.Create)
	accounts.PUT("/:id", accountHandler.Update)
	accounts.DELETE("/:id", accountHandler.Delete)
	accounts.DELETE("/:id/hard", accountHandler.HardDelete)

	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.GetAll)
	transactions.GET("/:id", transactionHandler.GetByID)
	transactions.POST("", transactionHandler.Create)
	transactions.PUT("/:id", transactionHandler.Update)
	transactions.DELETE("/:id", transactionHandler.Delete)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// data extracts the success-envelope payload as a map.
func data(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	if result["success"] != true {
		t.Fatalf("expected success envelope, got: %s", rec.Body.String())
	}
	payload, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected object data, got: %s", rec.Body.String())
	}
	return payload
}

// dataList extracts the success-envelope payload as a list.
func dataList(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	if result["success"] != true {
		t.Fatalf("expected success envelope, got: %s", rec.Body.String())
	}
	payload, ok := result["data"].([]interface{})
	if !ok {
		t.Fatalf("expected array data, got: %s", rec.Body.String())
	}
	return payload
}

// assertErrorCode verifies the uniform error envelope carries the given code.
func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, code string) {
	t.Helper()
	result := parseJSON(t, rec)
	if result["success"] != false {
		t.Fatalf("expected error envelope, got: %s", rec.Body.String())
	}
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got: %s", rec.Body.String())
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %s, got %v", code, errObj["code"])
	}
}
