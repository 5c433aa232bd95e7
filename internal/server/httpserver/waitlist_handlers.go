package httpserver

import (
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/server/validation"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) joinWaitlist(c *gin.Context) {
	var req validation.WaitlistSignup
	if !s.bindAndValidate(c, &req) {
		return
	}

	e, err := s.waitlist.Signup(c.Request.Context(), req.Email)
	if err != nil {
		s.writeError(c, err, errorMessages{conflict: emailOnWaitlistMessage})
		return
	}
	c.JSON(http.StatusCreated, e)
}
