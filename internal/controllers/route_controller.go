package controllers

import (
	"encoding/binary"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"waste_tracker/internal/config"
	"waste_tracker/internal/models"
	"waste_tracker/internal/scheduling"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// RouteResponse mirrors models.Route but has Geometry as a string for JSON output
type RouteResponse struct {
	ID          uint                   `json:"ID"`
	CreatedAt   time.Time              `json:"CreatedAt"`
	UpdatedAt   time.Time              `json:"UpdatedAt"`
	DeletedAt   gorm.DeletedAt         `json:"DeletedAt,omitempty"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Geometry    string                 `json:"geometry"` // GeoJSON string for API response
	Barangays   []models.RouteBarangay `json:"barangays"`
}

func toRouteResponse(route models.Route) RouteResponse {
	jsonGeom, _ := convertWKBToGeoJSON(route.Geometry)
	return RouteResponse{
		ID:          route.ID,
		CreatedAt:   route.CreatedAt,
		UpdatedAt:   route.UpdatedAt,
		DeletedAt:   route.DeletedAt,
		Name:        route.Name,
		Description: route.Description,
		Geometry:    jsonGeom,
		Barangays:   route.Barangays,
	}
}

// parseAndConvertGeometry parses a GeoJSON string into a geom.T and returns WKB bytes
func parseAndConvertGeometry(raw string) ([]byte, error) {
	if raw == "" {
		return nil, nil
	}
	var g geom.T
	err := gjson.Unmarshal([]byte(raw), &g)
	if err != nil {
		return nil, err
	}
	return wkb.Marshal(g, binary.LittleEndian)
}

// convertWKBToGeoJSON converts WKB bytes into a GeoJSON string
func convertWKBToGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CreateRoute creates a new collection route with an optional GeoJSON
// LineString and its ordered barangay memberships.
func CreateRoute(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Geometry    string `json:"geometry"` // GeoJSON string
		Barangays   []struct {
			BarangayID uint `json:"barangay_id"`
			OrderIndex int  `json:"order_index"`
		} `json:"barangays"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	wkbGeom, err := parseAndConvertGeometry(input.Geometry)
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid geometry: " + err.Error()})
		return
	}

	route := models.Route{Name: input.Name, Description: input.Description, Geometry: wkbGeom}
	if err := tx.Create(&route).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Create route failed: " + err.Error()})
		return
	}

	for _, b := range input.Barangays {
		membership := models.RouteBarangay{RouteID: route.ID, BarangayID: b.BarangayID, OrderIndex: b.OrderIndex}
		if err := tx.Create(&membership).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Create barangay membership failed: " + err.Error()})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	config.DB.Preload("Barangays").First(&route, route.ID)
	c.JSON(http.StatusCreated, gin.H{"route": toRouteResponse(route)})
}

// ReplaceRouteBarangays replaces the ordered barangay memberships of a route.
func ReplaceRouteBarangays(c *gin.Context) {
	rID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var route models.Route
	if err := config.DB.First(&route, rID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	var input struct {
		Barangays []models.RouteBarangay `json:"barangays" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	if err := tx.Where("route_id=?", route.ID).Delete(&models.RouteBarangay{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete barangay memberships: " + err.Error()})
		return
	}
	// an empty list clears the route; gorm rejects Create on empty slices
	if len(input.Barangays) > 0 {
		for i := range input.Barangays {
			input.Barangays[i].RouteID = route.ID
		}
		if err := tx.Create(&input.Barangays).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Replace barangay memberships failed: " + err.Error()})
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	config.DB.Preload("Barangays").First(&route, route.ID)
	c.JSON(http.StatusOK, gin.H{"route": toRouteResponse(route)})
}

// ListRoutes returns all routes with their barangay memberships
func ListRoutes(c *gin.Context) {
	var routes []models.Route
	config.DB.Preload("Barangays").Find(&routes)

	var routeResponses []RouteResponse
	for _, r := range routes {
		routeResponses = append(routeResponses, toRouteResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"routes": routeResponses})
}

// GetRoute returns a single route with its barangay memberships
func GetRoute(c *gin.Context) {
	rID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var route models.Route
	if err := config.DB.Preload("Barangays").First(&route, rID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"route": toRouteResponse(route)})
}

// GetRouteBarangays returns the route's stops resolved to display names in
// traversal order. Stale barangay ids render as "Unknown Barangay".
func GetRouteBarangays(c *gin.Context) {
	rID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var route models.Route
	if err := config.DB.Preload("Barangays").First(&route, rID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	var barangays []models.Barangay
	if err := config.DB.Find(&barangays).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching barangays"})
		return
	}

	stops := scheduling.OrderedStops(route, scheduling.BarangayNames(barangays))
	c.JSON(http.StatusOK, gin.H{"stops": stops})
}

// UpdateRoute handles updating an existing route's metadata.
func UpdateRoute(c *gin.Context) {
	rID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logrus.WithError(err).Warn("UpdateRoute: Invalid route ID in parameter")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return
	}

	var existingRoute models.Route
	if err := config.DB.First(&existingRoute, rID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			logrus.WithError(err).Error("UpdateRoute: Database error fetching route")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var input struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Geometry    *string `json:"geometry"` // GeoJSON string
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("UpdateRoute: Invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		existingRoute.Name = *input.Name
	}
	if input.Description != nil {
		existingRoute.Description = *input.Description
	}
	if input.Geometry != nil {
		if *input.Geometry == "" {
			existingRoute.Geometry = nil
		} else {
			wkbGeom, err := parseAndConvertGeometry(*input.Geometry)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid geometry: " + err.Error()})
				return
			}
			existingRoute.Geometry = wkbGeom
		}
	}

	if err := config.DB.Save(&existingRoute).Error; err != nil {
		logrus.WithError(err).Error("UpdateRoute: Failed to save updated route")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"route": toRouteResponse(existingRoute)})
}

// DeleteRoute removes a route and its barangay memberships.
func DeleteRoute(c *gin.Context) {
	rID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return
	}

	var route models.Route
	if err := config.DB.First(&route, rID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	if err := tx.Where("route_id = ?", route.ID).Delete(&models.RouteBarangay{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete barangay memberships: " + err.Error()})
		return
	}

	if err := tx.Delete(&models.Route{}, route.ID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete route: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Route deleted successfully"})
}
