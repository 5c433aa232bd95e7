// Package models defines server-side data models persisted by the repositories
// and returned by the JSON API.
package models

import "time"

// User is an account identified by a unique, case-sensitive email.
// PasswordHash is an argon2id digest and never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
