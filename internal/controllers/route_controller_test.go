package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"waste_tracker/internal/config"
	"waste_tracker/internal/models"
)

// setupRouteTest wires the handler against an in-memory database seeded
// with one route that covers two barangays.
func setupRouteTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Barangay{}, &models.Route{}, &models.RouteBarangay{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	route := models.Route{Name: "North Loop"}
	if err := db.Create(&route).Error; err != nil {
		t.Fatalf("seed route: %v", err)
	}
	memberships := []models.RouteBarangay{
		{RouteID: route.ID, BarangayID: 1, OrderIndex: 0},
		{RouteID: route.ID, BarangayID: 2, OrderIndex: 1},
	}
	if err := db.Create(&memberships).Error; err != nil {
		t.Fatalf("seed memberships: %v", err)
	}

	r := gin.New()
	r.PATCH("/routes/:id/barangays", ReplaceRouteBarangays)
	return r
}

func patchBarangays(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/routes/1/barangays", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func membershipCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := config.DB.Model(&models.RouteBarangay{}).Where("route_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count memberships: %v", err)
	}
	return count
}

func TestReplaceRouteBarangays(t *testing.T) {
	r := setupRouteTest(t)

	w := patchBarangays(t, r, `{"barangays":[{"barangay_id":3,"order_index":0},{"barangay_id":4,"order_index":1},{"barangay_id":5,"order_index":2}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if got := membershipCount(t); got != 3 {
		t.Errorf("membership count = %d, want 3", got)
	}
}

// An empty list clears the route's stops instead of failing halfway with
// the old memberships already deleted.
func TestReplaceRouteBarangaysEmptyListClears(t *testing.T) {
	r := setupRouteTest(t)

	w := patchBarangays(t, r, `{"barangays":[]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if got := membershipCount(t); got != 0 {
		t.Errorf("membership count = %d, want 0", got)
	}
}

// A payload that fails binding must leave the existing memberships alone.
func TestReplaceRouteBarangaysRejectedPayloadKeepsStops(t *testing.T) {
	r := setupRouteTest(t)

	w := patchBarangays(t, r, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	if got := membershipCount(t); got != 2 {
		t.Errorf("membership count = %d, want the seeded 2", got)
	}
}
