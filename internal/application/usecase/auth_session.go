// internal/application/usecase/auth_session.go
package usecase

import (
	"context"
	"log"
	"sync"

	iddom "boutique/internal/domain/identity"
)

// AuthState is one of the two session states.
type AuthState string

const (
	AuthSignedOut AuthState = "signed-out"
	AuthSignedIn  AuthState = "signed-in"
)

// AuthSessionManager is the explicit two-state machine behind the identity
// UI.
//
// Entry actions: signed-in renders the profile summary with a sign-out
// control, signed-out renders the sign-in control. Each render passes a
// freshly bound handler because the control is recreated. A sign-in failure
// surfaces a message and leaves the state at signed-out; it is never fatal.
type AuthSessionManager struct {
	provider iddom.Provider
	view     AuthView
	icons    IconRefresher

	mu    sync.Mutex
	state AuthState
	user  *iddom.User
}

func NewAuthSessionManager(provider iddom.Provider, view AuthView, icons IconRefresher) *AuthSessionManager {
	return &AuthSessionManager{
		provider: provider,
		view:     view,
		icons:    icons,
		state:    AuthSignedOut,
	}
}

// Start attaches the manager to the provider's session notifications.
// The provider delivers the current state immediately, so the first render
// happens here too.
func (m *AuthSessionManager) Start() {
	if m == nil || m.provider == nil {
		return
	}
	m.provider.OnSessionChange(m.apply)
}

// State returns the current session state.
func (m *AuthSessionManager) State() AuthState {
	if m == nil {
		return AuthSignedOut
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns the signed-in user, or nil.
func (m *AuthSessionManager) CurrentUser() *iddom.User {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// SignIn forwards the credential to the provider. State only moves through
// the provider's session notification, so a failure changes nothing.
func (m *AuthSessionManager) SignIn(ctx context.Context, credential string) {
	if m == nil || m.provider == nil {
		return
	}
	if _, err := m.provider.SignIn(ctx, credential); err != nil {
		log.Printf("[auth_session] sign-in failed: %v", err)
		if m.view != nil {
			m.view.ShowMessage("Login failed: " + err.Error())
		}
	}
}

// SignOut ends the session via the provider.
func (m *AuthSessionManager) SignOut(ctx context.Context) {
	if m == nil || m.provider == nil {
		return
	}
	if err := m.provider.SignOut(ctx); err != nil {
		log.Printf("[auth_session] WARN: sign-out failed: %v", err)
	}
}

// apply is the session observer: it moves the machine and runs the entry
// action for the new state.
func (m *AuthSessionManager) apply(u *iddom.User) {
	m.mu.Lock()
	if u != nil {
		m.state = AuthSignedIn
		cp := *u
		m.user = &cp
	} else {
		m.state = AuthSignedOut
		m.user = nil
	}
	state := m.state
	m.mu.Unlock()

	if m.view == nil {
		return
	}

	switch state {
	case AuthSignedIn:
		m.view.RenderProfile(*u, func() {
			m.SignOut(context.Background())
		})
	default:
		m.view.RenderSignIn(func(credential string) {
			m.SignIn(context.Background(), credential)
		})
	}

	if m.icons != nil {
		m.icons.RefreshIcons()
	}
}
