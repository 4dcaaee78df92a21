package models

import "time"

// Post is a text post belonging to a user.
type Post struct {
	ID        string
	AuthorID  string
	Title     string
	Body      string
	CreatedAt time.Time
}
