package httpserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/validation"
	"github.com/gin-gonic/gin"
)

// User-facing messages. Anything not listed here is logged and answered with
// internalErrorMessage.
const (
	internalErrorMessage   = "internal server error"
	unauthorizedMessage    = "authentication required"
	invalidCredentialsMsg  = "invalid email or password"
	invalidBodyMessage     = "invalid request body"
	bodyTooLargeMessage    = "request body too large"
	noteNotFoundMessage    = "note not found"
	emailRegisteredMessage = "email is already registered"
	emailOnWaitlistMessage = "email is already on the waitlist"
	defaultConflictMessage = "already exists"
	defaultNotFoundMessage = "not found"
)

// errorMessages overrides the default text for a sentinel error per route.
type errorMessages struct {
	conflict string
	notFound string
}

// writeError maps err to a status code and a {"message": ...} body.
func (s *HTTPServer) writeError(c *gin.Context, err error, msgs ...errorMessages) {
	var m errorMessages
	if len(msgs) > 0 {
		m = msgs[0]
	}

	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Error()})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"message": orDefault(m.conflict, defaultConflictMessage)})
	case errors.Is(err, common.ErrorInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": invalidCredentialsMsg})
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": unauthorizedMessage})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": orDefault(m.notFound, defaultNotFoundMessage)})
	default:
		s.logger.Error(c.Request.Context(), "request failed",
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalErrorMessage})
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
