package models

import "time"

// Note belongs to exactly one user.
type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NotePatch is a partial update. Nil fields are left unchanged.
type NotePatch struct {
	Title   *string
	Content *string
}

// Apply copies the non-nil fields of p onto n.
func (p NotePatch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
}
