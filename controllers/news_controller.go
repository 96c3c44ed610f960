package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Timestamp   time.Time `json:"timestamp"`
	Source      string    `json:"source"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
}

var mockNews = []NewsItem{
	{
		ID:          "news_001",
		Title:       "Flood Alert: Heavy Rainfall Expected in North India",
		Description: "Meteorological department issues flood warning for northern states as monsoon intensifies",
		Category:    "weather",
		Priority:    "high",
		Timestamp:   time.Now().Add(-2 * time.Hour),
		Source:      "IMD",
		Location:    "North India",
		Type:        "alert",
	},
	{
		ID:          "news_002",
		Title:       "Earthquake Preparedness Drive in Himalayan Region",
		Description: "NDMA conducts earthquake preparedness workshops in seismically active zones",
		Category:    "safety",
		Priority:    "medium",
		Timestamp:   time.Now().Add(-6 * time.Hour),
		Source:      "NDMA",
		Location:    "Himalayan Region",
		Type:        "information",
	},
	{
		ID:          "news_003",
		Title:       "Cyclone Tracking: Bay of Bengal Disturbance",
		Description: "Low pressure area over Bay of Bengal being monitored for potential cyclone formation",
		Category:    "weather",
		Priority:    "medium",
		Timestamp:   time.Now().Add(-12 * time.Hour),
		Source:      "IMD",
		Location:    "Bay of Bengal",
		Type:        "alert",
	},
	{
		ID:          "news_004",
		Title:       "Heat Wave Warning for Western States",
		Description: "Temperatures expected to soar above 45°C in Rajasthan and Gujarat",
		Category:    "weather",
		Priority:    "high",
		Timestamp:   time.Now().Add(-24 * time.Hour),
		Source:      "IMD",
		Location:    "Western India",
		Type:        "alert",
	},
	{
		ID:          "news_005",
		Title:       "Disaster Management Training Completed",
		Description: "500+ volunteers trained in disaster response across 10 districts",
		Category:    "training",
		Priority:    "low",
		Timestamp:   time.Now().Add(-2 * 24 * time.Hour),
		Source:      "NDRF",
		Location:    "Multiple States",
		Type:        "information",
	},
}

type NewsController struct{}

func NewNewsController() *NewsController {
	return &NewsController{}
}

// GET /api/news?category&priority&limit
func (nc *NewsController) List(c *gin.Context) {
	filtered := make([]NewsItem, 0, len(mockNews))
	category := c.Query("category")
	priority := c.Query("priority")
	for _, n := range mockNews {
		if category != "" && n.Category != category {
			continue
		}
		if priority != "" && n.Priority != priority {
			continue
		}
		filtered = append(filtered, n)
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit >= 0 && limit < len(filtered) {
			filtered = filtered[:limit]
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": filtered})
}

// GET /api/news/:id
func (nc *NewsController) Get(c *gin.Context) {
	id := c.Param("id")
	for _, n := range mockNews {
		if n.ID == id {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": n})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "News item not found"})
}

// GET /api/news/alerts/active — only the alert-typed items.
func (nc *NewsController) ActiveAlerts(c *gin.Context) {
	alerts := make([]NewsItem, 0)
	for _, n := range mockNews {
		if n.Type == "alert" {
			alerts = append(alerts, n)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": alerts})
}
