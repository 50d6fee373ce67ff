package domain

// Role is an identity's authorization role. Matching is exact and
// case-sensitive.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleUser    Role = "USER"
	RoleManager Role = "MANAGER"
	RoleWriter  Role = "WRITER"
	RoleReader  Role = "READER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleManager, RoleWriter, RoleReader:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
