package controllers

import (
	"errors"
	"net/http"

	"github.com/HarshCode115/AapdaRakshak/services"

	"github.com/gin-gonic/gin"
)

type VolunteerController struct {
	Volunteers *services.VolunteerService
}

func NewVolunteerController(volunteers *services.VolunteerService) *VolunteerController {
	return &VolunteerController{Volunteers: volunteers}
}

// VolunteerRequest accepts both the old "desc" key and "description";
// older client builds still send the short form.
type VolunteerRequest struct {
	Name        string                            `json:"name"`
	Number      string                            `json:"number"`
	Type        string                            `json:"type"`
	Location    string                            `json:"location"`
	Desc        string                            `json:"desc"`
	Description string                            `json:"description"`
	Documents   []services.VolunteerDocumentInput `json:"supportingDocuments"`
}

// POST /user/volunteer
func (vc *VolunteerController) Apply(c *gin.Context) {
	userID := c.GetString("userID")

	var req VolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "flag": false})
		return
	}

	description := req.Desc
	if description == "" {
		description = req.Description
	}
	if description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Description is required", "flag": false})
		return
	}

	err := vc.Volunteers.Apply(c.Request.Context(), services.VolunteerInput{
		Name:        req.Name,
		Phone:       req.Number,
		Type:        req.Type,
		Location:    req.Location,
		Description: description,
		UserID:      userID,
		Documents:   req.Documents,
	})
	if errors.Is(err, services.ErrAlreadyApplied) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Volunteer application already exists", "flag": false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error", "flag": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Volunteer application is under review", "flag": true})
}

// POST /admin/getvolunteers
func (vc *VolunteerController) List(c *gin.Context) {
	volunteers, err := vc.Volunteers.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error", "flag": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": volunteers, "flag": true})
}
