// Package web embeds the single-page front ends served at "/".
package web

import "embed"

// Page file names inside Pages.
const (
	NotesPage    = "notes.html"
	WaitlistPage = "waitlist.html"
)

//go:embed *.html
var Pages embed.FS
