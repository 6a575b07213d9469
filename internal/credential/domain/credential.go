// Package domain holds the credential type.
package domain

import "time"

// Credential maps an opaque token to the user it authenticates. Tokens are
// compared verbatim; the store does not validate that the user exists.
type Credential struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}
