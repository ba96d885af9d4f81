// internal/domain/identity/provider_port.go
package identity

import "context"

// Provider is the external identity collaborator.
//
// SignIn exchanges a credential (an ID token from the provider's own sign-in
// surface) for the current user. SignOut ends the session. OnSessionChange
// registers an observer that is invoked with the user on sign-in / session
// restoration and with nil on sign-out; the observer is also invoked once on
// registration with the current state.
type Provider interface {
	SignIn(ctx context.Context, credential string) (User, error)
	SignOut(ctx context.Context) error
	OnSessionChange(func(*User))
}
