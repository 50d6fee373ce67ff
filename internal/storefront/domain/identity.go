package domain

import "time"

// DefaultAvatar is stored when an identity has no picture of its own.
const DefaultAvatar = "profile.png"

// Identity is an account that can authenticate, either with a password
// (SecretHash set) or through the federated provider (ExternalID set,
// Federated true). Never both.
type Identity struct {
	ID         int64
	ExternalID string // federated uid; empty for password accounts
	FirstName  string
	LastName   string
	Email      string
	SecretHash string // bcrypt; empty for federated accounts
	Role       Role
	Avatar     string
	Federated  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Principal returns the request-scoped view of i.
func (i Identity) Principal() Principal {
	return Principal{
		IdentityID: i.ID,
		Email:      i.Email,
		Role:       i.Role,
		FirstName:  i.FirstName,
		LastName:   i.LastName,
		ExternalID: i.ExternalID,
	}
}
