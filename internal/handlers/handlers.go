// Package handlers exposes the store, checkout, advisory and admin
// operations over HTTP. Handlers do validation and status-code
// mapping only; all business rules live in the store.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"saripos/internal/ai"
	"saripos/internal/archive"
	"saripos/internal/store"
)

// Handler carries the handler dependencies. One instance is built in
// main and shared by every route; there are no package globals.
type Handler struct {
	Store   *store.Store
	Advisor *ai.Advisor
	Archive *archive.Archive
}

func New(s *store.Store, advisor *ai.Advisor, arc *archive.Archive) *Handler {
	return &Handler{Store: s, Advisor: advisor, Archive: arc}
}

// fail maps store errors onto HTTP statuses. Validation rejections
// are 4xx with the rejection reason; anything unexpected is a 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrEmptyCart),
		errors.Is(err, store.ErrInsufficientPayment),
		errors.Is(err, store.ErrNotPending):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateBarcode),
		errors.Is(err, store.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrSeedAdmin):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
