package domain

import (
	"errors"
	"time"
)

// User is a directory profile. Profiles are immutable after provisioning;
// Avatar is an opaque reference (data URI or URL) that this service stores
// and returns but never interprets.
type User struct {
	ID        string
	Name      string
	Avatar    string
	CreatedAt time.Time
}

// Validate validates the user for persistence. Returns an error describing the first validation failure.
func (u *User) Validate() error {
	if u.ID == "" {
		return errors.New("user id is required")
	}
	if u.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
