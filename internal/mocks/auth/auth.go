package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
	"github.com/sustainastock/sustainastock-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthAPI        = (*FakeAuthAPI)(nil)
	_ ports.SessionDeriver = (*StaticSessionDeriver)(nil)
)

// ErrInvalidCredentials is returned by FakeAuthAPI for unknown users or wrong passwords.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrUnknownToken is returned by StaticSessionDeriver for tokens it was not seeded with.
var ErrUnknownToken = errors.New("unknown token")

// FakeAuthAPI simulates the auth endpoints with an in-memory user table.
type FakeAuthAPI struct {
	LoginFunc    func(ctx context.Context, creds domainauth.Credentials) (string, error)
	RegisterFunc func(ctx context.Context, reg domainauth.Registration) error

	mu         sync.Mutex
	users      map[string]fakeUser
	registered []domainauth.Registration
}

type fakeUser struct {
	password string
	token    string
}

// NewFakeAuthAPI creates an empty FakeAuthAPI.
func NewFakeAuthAPI() *FakeAuthAPI {
	return &FakeAuthAPI{users: make(map[string]fakeUser)}
}

// AddUser seeds a user that logs in with password and receives token.
func (f *FakeAuthAPI) AddUser(username, password, token string) *FakeAuthAPI {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[username] = fakeUser{password: password, token: token}
	return f
}

func (f *FakeAuthAPI) Login(ctx context.Context, creds domainauth.Credentials) (string, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, creds)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[creds.Username]
	if !ok || u.password != creds.Password {
		return "", ErrInvalidCredentials
	}
	return u.token, nil
}

func (f *FakeAuthAPI) Register(ctx context.Context, reg domainauth.Registration) error {
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, reg)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, reg)
	return nil
}

// Registered returns the registrations received so far.
func (f *FakeAuthAPI) Registered() []domainauth.Registration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domainauth.Registration(nil), f.registered...)
}

// StaticSessionDeriver maps known tokens to fixed sessions.
type StaticSessionDeriver struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
	calls    int
}

// NewStaticSessionDeriver creates an empty deriver.
func NewStaticSessionDeriver() *StaticSessionDeriver {
	return &StaticSessionDeriver{sessions: make(map[string]domainauth.Session)}
}

// With seeds token → sess.
func (d *StaticSessionDeriver) With(token string, sess domainauth.Session) *StaticSessionDeriver {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessions[token] = sess
	return d
}

func (d *StaticSessionDeriver) Derive(token string) (domainauth.Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	sess, ok := d.sessions[token]
	if !ok {
		return domainauth.Session{}, ErrUnknownToken
	}
	return sess, nil
}

// Calls reports how many times Derive ran.
func (d *StaticSessionDeriver) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}
