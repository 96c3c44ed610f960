package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/HarshCode115/AapdaRakshak/services"

	"github.com/gin-gonic/gin"
)

// DisasterInfo is the shape of the curated disaster feed. The dataset is
// static; live data comes from the earthquake passthrough below.
type DisasterInfo struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    DisasterLocation `json:"location"`
	Severity    string  `json:"severity"`
	Timestamp   time.Time `json:"timestamp"`
}

type DisasterLocation struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

var mockDisasters = []DisasterInfo{
	{
		ID:          "disaster_001",
		Type:        "flood",
		Title:       "Severe Flooding in Assam",
		Description: "Heavy rainfall causing flood conditions in Yamuna river basin",
		Location:    DisasterLocation{Name: "Assam, India", Lat: 26.2006, Lng: 92.9376},
		Severity:    "HIGH",
		Timestamp:   time.Now().Add(-2 * 24 * time.Hour),
	},
	{
		ID:          "disaster_002",
		Type:        "earthquake",
		Title:       "Moderate Earthquake in Uttarakhand",
		Description: "Moderate earthquake hits northern India",
		Location:    DisasterLocation{Name: "Uttarakhand, India", Lat: 30.0668, Lng: 79.0193},
		Severity:    "MEDIUM",
		Timestamp:   time.Now().Add(-24 * time.Hour),
	},
	{
		ID:          "disaster_003",
		Type:        "cyclone",
		Title:       "Cyclonic Storm Alert",
		Description: "Cyclonic circulation over Bay of Bengal, likely to intensify",
		Location:    DisasterLocation{Name: "West Bengal, India", Lat: 22.9868, Lng: 87.8550},
		Severity:    "HIGH",
		Timestamp:   time.Now().Add(-6 * time.Hour),
	},
	{
		ID:          "disaster_004",
		Type:        "landslide",
		Title:       "Landslide in Himachal Pradesh",
		Description: "Heavy rains trigger landslides in hilly areas",
		Location:    DisasterLocation{Name: "Himachal Pradesh, India", Lat: 31.1048, Lng: 77.1734},
		Severity:    "MEDIUM",
		Timestamp:   time.Now().Add(-12 * time.Hour),
	},
	{
		ID:          "disaster_005",
		Type:        "drought",
		Title:       "Drought Conditions in Maharashtra",
		Description: "Severe drought affecting agricultural areas",
		Location:    DisasterLocation{Name: "Maharashtra, India", Lat: 19.7515, Lng: 75.7139},
		Severity:    "HIGH",
		Timestamp:   time.Now().Add(-7 * 24 * time.Hour),
	},
	{
		ID:          "disaster_006",
		Type:        "heatwave",
		Title:       "Severe Heatwave in Rajasthan",
		Description: "Extreme temperatures affecting desert regions",
		Location:    DisasterLocation{Name: "Rajasthan, India", Lat: 27.0238, Lng: 74.2179},
		Severity:    "HIGH",
		Timestamp:   time.Now().Add(-3 * 24 * time.Hour),
	},
}

type DisasterController struct {
	Earthquakes *services.EarthquakeService
}

func NewDisasterController(earthquakes *services.EarthquakeService) *DisasterController {
	return &DisasterController{Earthquakes: earthquakes}
}

// GET /api/disasters
func (dc *DisasterController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": mockDisasters})
}

// GET /api/disasters/:id
func (dc *DisasterController) Get(c *gin.Context) {
	id := c.Param("id")
	for _, d := range mockDisasters {
		if d.ID == id {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": d})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Disaster not found"})
}

// GET /api/disasters/type/:type
func (dc *DisasterController) ByType(c *gin.Context) {
	typ := strings.ToLower(c.Param("type"))
	matches := make([]DisasterInfo, 0)
	for _, d := range mockDisasters {
		if d.Type == typ {
			matches = append(matches, d)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": matches})
}

// GET /api/disasters/earthquakes — USGS passthrough, degrades to an empty
// list when the upstream feed is down.
func (dc *DisasterController) RecentEarthquakes(c *gin.Context) {
	quakes, err := dc.Earthquakes.RecentEarthquakes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": []services.Earthquake{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": quakes})
}
