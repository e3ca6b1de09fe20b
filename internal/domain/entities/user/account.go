// Package user defines the account entity and the identity carried in JWT
// claims. Repositories abstract the persistence details so the application
// layer stays decoupled from the database.
package user

import (
	"errors"
	"time"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords; callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Account represents a registered user able to own sites.
type Account struct {
	ID           string    `json:"id"`
	OrgID        string    `json:"orgId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the view of an Account carried in JWT claims.
type Identity struct {
	AccountID string `json:"accountId"`
	OrgID     string `json:"orgId"`
	Email     string `json:"email"`
}
