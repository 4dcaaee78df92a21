package models

import "time"

// User is an account row in the users table. PasswordHash holds the bcrypt
// hash of the password; the plaintext never leaves the request that carried it.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
