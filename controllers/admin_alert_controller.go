package controllers

import (
	"errors"
	"net/http"

	"github.com/HarshCode115/AapdaRakshak/services"

	"github.com/gin-gonic/gin"
)

type AdminAlertController struct {
	Alerts *services.AlertService
}

func NewAdminAlertController(alerts *services.AlertService) *AdminAlertController {
	return &AdminAlertController{Alerts: alerts}
}

type CreateAlertRequest struct {
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	ExpiresBy   string `json:"expiresby"`
}

// POST /admin/createadminalert
func (ac *AdminAlertController) Create(c *gin.Context) {
	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "flag": false})
		return
	}
	if req.Location == "" || req.Type == "" || req.Description == "" || req.ExpiresBy == "" {
		c.JSON(http.StatusForbidden, gin.H{"message": "fill all fields", "flag": false})
		return
	}

	_, err := ac.Alerts.Create(c.Request.Context(), services.CreateAlertInput{
		Type:        req.Type,
		Location:    req.Location,
		Description: req.Description,
		ExpiresBy:   req.ExpiresBy,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error", "flag": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully created", "flag": true})
}

// POST /admin/getalerts
func (ac *AdminAlertController) List(c *gin.Context) {
	alerts, err := ac.Alerts.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error", "flag": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": alerts, "flag": true})
}

type UpdateAlertRequest struct {
	ID          uint   `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ExpiresBy   string `json:"expiresby"`
}

// POST /admin/updatealert
func (ac *AdminAlertController) Update(c *gin.Context) {
	var req UpdateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "flag": false})
		return
	}
	if req.ID == 0 || req.Type == "" || req.Description == "" || req.Location == "" || req.ExpiresBy == "" {
		c.JSON(http.StatusForbidden, gin.H{"message": "fill all fields", "flag": false})
		return
	}

	err := ac.Alerts.Update(c.Request.Context(), services.UpdateAlertInput{
		ID:          req.ID,
		Type:        req.Type,
		Description: req.Description,
		Location:    req.Location,
		ExpiresBy:   req.ExpiresBy,
	})
	if errors.Is(err, services.ErrAlertNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Alert not found", "flag": false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error", "flag": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "successfully updated", "flag": true})
}

type DeleteAlertRequest struct {
	ID uint `json:"id"`
}

// POST /admin/deletealert
func (ac *AdminAlertController) Delete(c *gin.Context) {
	var req DeleteAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "flag": false})
		return
	}

	if err := ac.Alerts.Delete(c.Request.Context(), req.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error", "flag": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "successfully deleted", "flag": true})
}

type ApproveAlertRequest struct {
	ID       uint   `json:"id"`
	Response string `json:"response"`
}

// POST /admin/approvealert
func (ac *AdminAlertController) Approve(c *gin.Context) {
	var req ApproveAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "flag": false})
		return
	}

	message, err := ac.Alerts.Resolve(c.Request.Context(), req.ID, req.Response)
	if errors.Is(err, services.ErrAlertNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Alert not found", "flag": false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error", "flag": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "flag": true})
}
