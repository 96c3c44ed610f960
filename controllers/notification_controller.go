package controllers

import (
	"net/http"
	"strconv"

	"github.com/HarshCode115/AapdaRakshak/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Inbox *services.NotificationService
}

func NewNotificationController(inbox *services.NotificationService) *NotificationController {
	return &NotificationController{Inbox: inbox}
}

// GET /api/notifications/:userId?page&limit&unreadOnly
func (nc *NotificationController) List(c *gin.Context) {
	userID := c.Param("id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	unreadOnly := c.Query("unreadOnly") == "true"

	result, err := nc.Inbox.List(c.Request.Context(), userID, page, limit, unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"notifications": result.Notifications,
			"pagination": gin.H{
				"currentPage": result.CurrentPage,
				"totalPages":  result.TotalPages,
				"totalCount":  result.TotalCount,
				"unreadCount": result.UnreadCount,
			},
		},
	})
}

// PATCH /api/notifications/:notificationId/read
func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid notification id"})
		return
	}

	if err := nc.Inbox.MarkRead(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification marked as read"})
}

// PATCH /api/notifications/:userId/read-all
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	userID := c.Param("id")

	if err := nc.Inbox.MarkAllRead(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "All notifications marked as read"})
}
