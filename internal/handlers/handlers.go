package handlers

import (
	"errors"
	"net/http"
	"time"

	"productivity-api/internal/store"

	"github.com/gin-gonic/gin"
)

// currentUserID pulls the authenticated user from the request context set
// by the JWT middleware. A missing value means the middleware was
// bypassed; treat it as unauthenticated.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return "", false
	}
	return userID, true
}

// respondStoreError maps store errors onto the HTTP error taxonomy. The
// fallback message keeps storage failures generic.
func respondStoreError(c *gin.Context, err error, notFoundMsg, failureMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, store.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}

// parseDateFlexible accepts the date formats clients are known to send.
func parseDateFlexible(dateStr string) (time.Time, bool) {
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2 Jan 2006",
		"02 Jan 2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
