// internal/domain/identity/entity.go
package identity

import "strings"

// User is the identity summary exposed by the provider after sign-in.
type User struct {
	UID         string
	DisplayName string
	Email       string
	PhotoURL    string
}

// Label returns the best human-readable name for the user.
func (u User) Label() string {
	if n := strings.TrimSpace(u.DisplayName); n != "" {
		return n
	}
	return strings.TrimSpace(u.Email)
}
