// Package identity carries the caller identity handed to the core by the
// external authentication collaborator. The core trusts these values; it
// performs no credential checks of its own.
package identity

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
