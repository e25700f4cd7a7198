package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwseo/maechuldash-backend/internal/app/repository"
	"github.com/jwseo/maechuldash-backend/internal/app/service"
	"github.com/jwseo/maechuldash-backend/internal/dataset"
	"github.com/jwseo/maechuldash-backend/internal/db"
	"github.com/jwseo/maechuldash-backend/internal/middleware"
	"github.com/jwseo/maechuldash-backend/pkg/util"
)

const testDashboardDoc = `{
	"sales_summary": {"tag_sales": 140000, "net_sales": 100000, "yoy": 105},
	"store_summary": {
		"R001": {"store_code": "R001", "store_name": "강남점", "channel": "Retail",
			"current": {"net_sales": 60000}, "previous": {"net_sales": 30000}}
	}
}`

const testPLDoc = `{
	"current_month": {
		"offline": {"tag_sales": 140000, "net_sales": 100000, "direct_profit": 25000},
		"total": {"tag_sales": 230000, "net_sales": 190000, "operating_profit": 22800}
	}
}`

func setupDashboardControllerTest(t *testing.T, docs map[string]string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	payloadHost := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if doc, ok := docs[r.URL.Path]; ok {
			w.Write([]byte(doc))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(payloadHost.Close)

	areaRepo := repository.NewStoreAreaRepository(testDB)
	loader := dataset.NewLoader(dataset.NewHTTPSource(payloadHost.URL), "mfc")
	dashboardService := service.NewDashboardService(loader, nil, areaRepo)

	ctrl := NewDashboardController(dashboardService, nil)
	exportCtrl := NewExportController(dashboardService, service.NewExportService())
	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	router := gin.New()
	dashboard := router.Group("/dashboard")
	dashboard.Use(authMiddleware.Authenticate())
	{
		dashboard.GET("/:period", ctrl.GetDashboard)
		dashboard.GET("/:period/pl", ctrl.GetPL)
		dashboard.GET("/:period/export", exportCtrl.ExportReport)
		dashboard.POST("/:period/refresh", authMiddleware.RequireRole("admin"), ctrl.Refresh)
	}
	return router
}

func testToken(t *testing.T, role string) string {
	t.Helper()
	token, err := util.GenerateToken(1, "user@example.com", role, "test-secret", time.Hour)
	require.NoError(t, err)
	return token
}

func authedRequest(t *testing.T, method, path, role string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, role))
	return req
}

func TestDashboardController_GetDashboard(t *testing.T) {
	router := setupDashboardControllerTest(t, map[string]string{
		"/mfc-dashboard-data-2511.json": testDashboardDoc,
		"/mfc-pl-data-2511.json":        testPLDoc,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, "GET", "/dashboard/2511", "analyst"))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "2511", data["period"])

	source := data["source"].(map[string]interface{})
	assert.Equal(t, "fetched", source["dashboard"])
}

func TestDashboardController_InvalidPeriod(t *testing.T) {
	router := setupDashboardControllerTest(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, "GET", "/dashboard/20251", "analyst"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "VALIDATION_INVALID_PERIOD", response["error"])
}

func TestDashboardController_RequiresAuth(t *testing.T) {
	router := setupDashboardControllerTest(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/dashboard/2511", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardController_RefreshRequiresAdmin(t *testing.T) {
	router := setupDashboardControllerTest(t, map[string]string{
		"/mfc-dashboard-data-2511.json": testDashboardDoc,
		"/mfc-pl-data-2511.json":        testPLDoc,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, "POST", "/dashboard/2511/refresh", "analyst"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, "POST", "/dashboard/2511/refresh", "admin"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboardController_GetPLNotFound(t *testing.T) {
	router := setupDashboardControllerTest(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, "GET", "/dashboard/2511/pl", "analyst"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "DASHBOARD_UNAVAILABLE", response["error"])
}

func TestDashboardController_Export(t *testing.T) {
	router := setupDashboardControllerTest(t, map[string]string{
		"/mfc-dashboard-data-2511.json": testDashboardDoc,
		"/mfc-pl-data-2511.json":        testPLDoc,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, "GET", "/dashboard/2511/export", "analyst"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "monthly-report-2511.xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestExportController_NoData(t *testing.T) {
	router := setupDashboardControllerTest(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, "GET", "/dashboard/2511/export", "analyst"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
