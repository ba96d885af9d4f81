// internal/adapters/out/identity/firebase_provider.go
package identity

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	fbauth "firebase.google.com/go/v4/auth"

	iddom "boutique/internal/domain/identity"
)

// FirebaseProvider implements identity.Provider on Firebase Auth.
//
// The sign-in surface (popup, redirect, whatever the front door uses) is the
// collaborator's; what reaches this layer is the resulting ID token. SignIn
// verifies it and hydrates the profile, SignOut revokes the user's refresh
// tokens. Session-change observers run synchronously on the caller's
// goroutine, in registration order.
type FirebaseProvider struct {
	auth *fbauth.Client

	mu        sync.Mutex
	current   *iddom.User
	observers []func(*iddom.User)
}

func NewFirebaseProvider(auth *fbauth.Client) (*FirebaseProvider, error) {
	if auth == nil {
		return nil, errors.New("identity: firebase auth client is nil")
	}
	return &FirebaseProvider{auth: auth}, nil
}

func (p *FirebaseProvider) SignIn(ctx context.Context, credential string) (iddom.User, error) {
	idToken := strings.TrimSpace(credential)
	if idToken == "" {
		return iddom.User{}, errors.New("identity: empty credential")
	}

	tok, err := p.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return iddom.User{}, fmt.Errorf("identity: token verification failed: %w", err)
	}

	rec, err := p.auth.GetUser(ctx, tok.UID)
	if err != nil {
		return iddom.User{}, fmt.Errorf("identity: user lookup failed (uid=%s): %w", tok.UID, err)
	}

	u := iddom.User{
		UID:         rec.UID,
		DisplayName: rec.DisplayName,
		Email:       rec.Email,
		PhotoURL:    rec.PhotoURL,
	}

	p.setCurrent(&u)
	log.Printf("[identity] signed in uid=%s", u.UID)
	return u, nil
}

func (p *FirebaseProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	cur := p.current
	p.mu.Unlock()

	if cur == nil {
		return nil
	}

	if err := p.auth.RevokeRefreshTokens(ctx, cur.UID); err != nil {
		// best-effort remote revoke: local session ends regardless
		log.Printf("[identity] WARN: revoke refresh tokens failed uid=%s: %v", cur.UID, err)
	}

	p.setCurrent(nil)
	log.Printf("[identity] signed out uid=%s", cur.UID)
	return nil
}

func (p *FirebaseProvider) OnSessionChange(fn func(*iddom.User)) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	p.observers = append(p.observers, fn)
	cur := p.current
	p.mu.Unlock()

	// initial delivery mirrors onAuthStateChanged: observers always learn the
	// current state right away
	fn(cur)
}

func (p *FirebaseProvider) setCurrent(u *iddom.User) {
	p.mu.Lock()
	p.current = u
	obs := make([]func(*iddom.User), len(p.observers))
	copy(obs, p.observers)
	p.mu.Unlock()

	for _, fn := range obs {
		fn(u)
	}
}
