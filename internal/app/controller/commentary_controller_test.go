package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/jwseo/maechuldash-backend/internal/app/repository"
	"github.com/jwseo/maechuldash-backend/internal/app/service"
	"github.com/jwseo/maechuldash-backend/internal/db"
	"github.com/jwseo/maechuldash-backend/internal/middleware"
)

func setupCommentaryControllerTest(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	commentaryService := service.NewCommentaryService(repository.NewCommentaryRepository(testDB))
	ctrl := NewCommentaryController(commentaryService)
	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	router := gin.New()
	dashboard := router.Group("/dashboard")
	dashboard.Use(authMiddleware.Authenticate())
	{
		dashboard.GET("/:period/commentary", ctrl.GetCommentary)
		dashboard.PUT("/:period/commentary", authMiddleware.RequireRole("analyst", "admin"), ctrl.UpdateCommentary)
	}
	return router
}

func TestCommentaryController_DefaultWhenMissing(t *testing.T) {
	router := setupCommentaryControllerTest(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, "GET", "/dashboard/2511/commentary", "analyst"))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	data := response["data"].(map[string]interface{})
	assert.Equal(t, false, data["stored"])

	sections := data["sections"].(map[string]interface{})
	assert.Equal(t, model.DefaultCommentary, sections["summary"])
}

func TestCommentaryController_UpdateAndRead(t *testing.T) {
	router := setupCommentaryControllerTest(t)

	body, _ := json.Marshal(UpdateCommentaryRequest{
		Sections: map[string]string{"summary": "11월 오프라인 매출 전년비 105% 마감."},
	})
	req := httptest.NewRequest("PUT", "/dashboard/2511/commentary", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken(t, "analyst"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, "GET", "/dashboard/2511/commentary", "analyst"))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, true, data["stored"])
	assert.Equal(t, "user@example.com", data["updated_by"])
}

func TestCommentaryController_UpdateRequiresRole(t *testing.T) {
	router := setupCommentaryControllerTest(t)

	body, _ := json.Marshal(UpdateCommentaryRequest{
		Sections: map[string]string{"summary": "x"},
	})
	req := httptest.NewRequest("PUT", "/dashboard/2511/commentary", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken(t, "viewer"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCommentaryController_RejectsMissingSections(t *testing.T) {
	router := setupCommentaryControllerTest(t)

	req := httptest.NewRequest("PUT", "/dashboard/2511/commentary", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken(t, "analyst"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
