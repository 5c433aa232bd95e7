package validation

import "strings"

// Registration is the body of POST /api/register.
type Registration struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

func (r *Registration) Normalize() { r.Email = strings.TrimSpace(r.Email) }

// Login is the body of POST /api/login. Only presence is checked; a wrong
// shape simply fails authentication.
type Login struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (l *Login) Normalize() { l.Email = strings.TrimSpace(l.Email) }

// WaitlistSignup is the body of POST /api/waitlist.
type WaitlistSignup struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

func (w *WaitlistSignup) Normalize() { w.Email = strings.TrimSpace(w.Email) }

// NoteCreate is the body of POST /api/notes.
type NoteCreate struct {
	Title   string `json:"title" validate:"notblank"`
	Content string `json:"content" validate:"notblank"`
}

// NoteUpdate is the body of PUT /api/notes/:id. Absent fields are left
// untouched, present ones must still be non-blank.
type NoteUpdate struct {
	Title   *string `json:"title" validate:"omitnil,notblank"`
	Content *string `json:"content" validate:"omitnil,notblank"`
}
