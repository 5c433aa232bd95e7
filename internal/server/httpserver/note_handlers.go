package httpserver

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/validation"
	"github.com/gin-gonic/gin"
)

var noteErrors = errorMessages{notFound: noteNotFoundMessage}

// noteID parses the :id path parameter. A malformed id names no note.
func noteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *HTTPServer) listNotes(c *gin.Context) {
	user := currentUserFrom(c)

	list, err := s.notes.List(c.Request.Context(), user.ID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if list == nil {
		list = []models.Note{}
	}
	c.JSON(http.StatusOK, list)
}

func (s *HTTPServer) createNote(c *gin.Context) {
	user := currentUserFrom(c)

	var req validation.NoteCreate
	if !s.bindAndValidate(c, &req) {
		return
	}

	n, err := s.notes.Create(c.Request.Context(), user.ID, req.Title, req.Content)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (s *HTTPServer) getNote(c *gin.Context) {
	user := currentUserFrom(c)

	id, ok := noteID(c)
	if !ok {
		s.writeError(c, common.ErrorNotFound, noteErrors)
		return
	}

	n, err := s.notes.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		s.writeError(c, err, noteErrors)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *HTTPServer) updateNote(c *gin.Context) {
	user := currentUserFrom(c)

	var req validation.NoteUpdate
	if !s.bindPatch(c, &req) {
		return
	}

	id, ok := noteID(c)
	if !ok {
		s.writeError(c, common.ErrorNotFound, noteErrors)
		return
	}

	n, err := s.notes.Update(c.Request.Context(), user.ID, id, models.NotePatch{Title: req.Title, Content: req.Content})
	if err != nil {
		s.writeError(c, err, noteErrors)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *HTTPServer) deleteNote(c *gin.Context) {
	user := currentUserFrom(c)

	if id, ok := noteID(c); ok {
		if err := s.notes.Delete(c.Request.Context(), user.ID, id); err != nil {
			s.writeError(c, err)
			return
		}
	}
	c.Status(http.StatusOK)
}
