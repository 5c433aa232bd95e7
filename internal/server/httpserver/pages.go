package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/server/httpserver/web"
	"github.com/gin-gonic/gin"
)

const (
	webNotesPage    = web.NotesPage
	webWaitlistPage = web.WaitlistPage

	healthTimeout = 2 * time.Second
)

func (s *HTTPServer) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.FileFromFS(name, http.FS(web.Pages))
	}
}

// health pings the storage backend.
func (s *HTTPServer) health(c *gin.Context) {
	if s.storage != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := s.storage.Ping(ctx); err != nil {
			s.logger.Warn(ctx, "storage ping failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
