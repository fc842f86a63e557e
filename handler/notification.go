package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/service"
)

// NotificationHandler manages the shared notification feed.
type NotificationHandler struct {
	appState *service.AppState
}

func NewNotificationHandler(appState *service.AppState) *NotificationHandler {
	return &NotificationHandler{appState: appState}
}

type createNotificationRequest struct {
	Type    string `json:"type" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message"`
}

func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notifications": h.appState.Notifications(),
		"unreadCount":   h.appState.UnreadCount(),
	})
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	switch req.Type {
	case service.NotifySuccess, service.NotifyError, service.NotifyWarning, service.NotifyInfo:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown notification type: " + req.Type})
		return
	}

	n := h.appState.AddNotification(req.Type, req.Title, req.Message)
	c.JSON(http.StatusCreated, n)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if !h.appState.MarkNotificationRead(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unreadCount": h.appState.UnreadCount()})
}

func (h *NotificationHandler) Remove(c *gin.Context) {
	id := c.Param("id")
	if !h.appState.RemoveNotification(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	h.appState.ClearNotifications()
	c.Status(http.StatusNoContent)
}
