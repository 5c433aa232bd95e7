package httpserver

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/server/services"
	"github.com/dmitrijs2005/notekeeper/internal/server/validation"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) register(c *gin.Context) {
	var req validation.Registration
	if !s.bindAndValidate(c, &req) {
		return
	}

	user, sess, err := s.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err, errorMessages{conflict: emailRegisteredMessage})
		return
	}

	if sess != nil {
		s.setSessionCookie(c, sess)
	}
	c.JSON(http.StatusCreated, user)
}

func (s *HTTPServer) login(c *gin.Context) {
	var req validation.Login
	if !s.bindAndValidate(c, &req) {
		return
	}

	user, sess, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.setSessionCookie(c, sess)
	c.JSON(http.StatusOK, user)
}

func (s *HTTPServer) logout(c *gin.Context) {
	if token, err := c.Cookie(s.cookieName); err == nil && token != "" {
		if err := s.auth.Logout(c.Request.Context(), token); err != nil {
			s.writeError(c, err)
			return
		}
	}

	s.clearSessionCookie(c)
	c.Status(http.StatusOK)
}

func (s *HTTPServer) currentUser(c *gin.Context) {
	c.JSON(http.StatusOK, currentUserFrom(c))
}

func (s *HTTPServer) setSessionCookie(c *gin.Context, sess *services.IssuedSession) {
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, sess.Token, maxAge, "/", "", s.cookieSecure, true)
}

func (s *HTTPServer) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, "", -1, "/", "", s.cookieSecure, true)
}

// bindAndValidate decodes the JSON body into req and checks it. On failure
// the 400 response has already been written.
func (s *HTTPServer) bindAndValidate(c *gin.Context, req any) bool {
	return s.bind(c, req, false)
}

// bindPatch is bindAndValidate for partial updates, where an empty body
// means the same as {}.
func (s *HTTPServer) bindPatch(c *gin.Context, req any) bool {
	return s.bind(c, req, true)
}

func (s *HTTPServer) bind(c *gin.Context, req any, emptyOK bool) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": bodyTooLargeMessage})
			return false
		case emptyOK && errors.Is(err, io.EOF):
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": invalidBodyMessage})
			return false
		}
	}
	if err := s.validator.Validate(req); err != nil {
		s.writeError(c, err)
		return false
	}
	return true
}
