package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saripos/internal/models"
)

// --- GET: Notification feed, most recent first ---
func (h *Handler) GetNotifications(c *gin.Context) {
	feed := h.Store.Notifications()
	if feed == nil {
		feed = []models.Notification{}
	}

	unread := 0
	for _, n := range feed {
		if !n.Read {
			unread++
		}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": feed, "unread": unread})
}

// --- POST: Mark every notification read ---
func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	h.Store.MarkAllRead()
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked read"})
}
