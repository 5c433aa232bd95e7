package models

import "time"

type WaitlistEntry struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	SignedUpAt time.Time `json:"signedUpAt"`
}
