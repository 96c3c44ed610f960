package controllers

import (
	"net/http"

	"github.com/HarshCode115/AapdaRakshak/services"

	"github.com/gin-gonic/gin"
)

type UserAlertController struct {
	Alerts *services.AlertService
}

func NewUserAlertController(alerts *services.AlertService) *UserAlertController {
	return &UserAlertController{Alerts: alerts}
}

type UserAlertRequest struct {
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ExpiresBy   string `json:"expiresby"`
}

// POST /user/createalert — user-submitted alerts land as pending and wait
// for admin review before any notification goes out.
func (uc *UserAlertController) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req UserAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "flag": false})
		return
	}
	if req.Type == "" || req.Location == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Type, location, and description are required fields",
			"flag":    false,
		})
		return
	}
	if req.ExpiresBy == "" {
		req.ExpiresBy = "NA"
	}

	alert, err := uc.Alerts.Create(c.Request.Context(), services.CreateAlertInput{
		Type:          req.Type,
		Location:      req.Location,
		Description:   req.Description,
		ExpiresBy:     req.ExpiresBy,
		CreatedByUser: true,
		UserID:        userID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "flag": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Alert submitted for admin review",
		"alert":   alert,
		"flag":    true,
	})
}
