package model

import "time"

// User is a registered account. PasswordHash is produced by the auth
// collaborator; this core never hashes or verifies passwords.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AnonymousActorID is the sentinel actor id used when a request carries
// no authenticated user.
const AnonymousActorID = "anonymous"

// Actor is the authenticated party making a request, as extracted from the
// transport layer's token claims.
type Actor struct {
	ID             string `json:"id"`
	Role           Role   `json:"role"`
	OrganizationID string `json:"organization_id"`
}

// Actor returns the acting identity of the user.
func (u User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role, OrganizationID: u.OrganizationID}
}
