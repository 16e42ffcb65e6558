// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account. PasswordHash and SecurityStamp are only ever changed by
// the credential store; every password change rotates SecurityStamp.
type User struct {
	ID            string
	UserName      string
	Email         string
	PasswordHash  string
	SecurityStamp string
	CreatedAt     time.Time
}

// Role is a named tag granted to users. Names are unique.
type Role struct {
	ID   string
	Name string
}
