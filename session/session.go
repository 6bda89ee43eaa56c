package session

import (
	"context"
	"sync"
	"time"

	"github.com/broqhotels/broq-go/tokenstore"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Role is the backend's user role as carried in login and refresh responses.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// LoginResult is the identity-plus-token payload returned by the backend's
// login and refresh endpoints.
type LoginResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
}

// Snapshot is a point-in-time value copy of the session. Readers always see
// a whole identity set, never a mix of old and new fields.
type Snapshot struct {
	AccessToken     string
	Username        string
	Email           string
	Role            Role
	IsAuthenticated bool
	IsInitializing  bool
	ExpiresAt       time.Time // informational only, parsed from the access token when it is a JWT
}

// AuthAPI is the narrow backend surface the session needs. It is implemented
// by rest.AuthClient; keeping it an interface here breaks the wiring cycle
// between the session and the request pipeline that serves its consumers.
type AuthAPI interface {
	RefreshSession(ctx context.Context, refreshToken string) (*LoginResult, error)
	Logout(ctx context.Context, refreshToken string) error
}

// Session holds the authenticated identity for the life of the process. The
// access credential lives only in memory; the refresh credential is mirrored
// into the durable store. Construct exactly one and pass it by reference to
// the pipeline and the guard at wiring time.
type Session struct {
	store  tokenstore.Store
	api    AuthAPI
	log    zerolog.Logger
	change func(Snapshot)

	initOnce sync.Once

	lock          sync.RWMutex
	accessToken   string
	username      string
	email         string
	role          Role
	authenticated bool
	initializing  bool
}

// Option configures optional Session behaviour.
type Option func(*Session)

// WithLogger sets the logger used for swallowed failures.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithChangeHook registers a hook invoked after every atomic state swap with
// the resulting snapshot. Invoked outside the session lock.
func WithChangeHook(hook func(Snapshot)) Option {
	return func(s *Session) {
		s.change = hook
	}
}

// New creates an empty, uninitialised session. IsInitializing stays true
// until Initialize has run.
func New(store tokenstore.Store, api AuthAPI, options ...Option) (*Session, error) {
	if store == nil {
		return nil, errors.New("[session.New] store is required")
	}
	if api == nil {
		return nil, errors.New("[session.New] auth API is required")
	}
	s := &Session{
		store:        store,
		api:          api,
		log:          zerolog.Nop(),
		initializing: true,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Initialize attempts a one-time restore of the session from a durable
// refresh credential. Failures are logged and swallowed: the user simply
// starts out unauthenticated. Safe to call more than once; only the first
// call does anything.
func (s *Session) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		defer func() {
			s.lock.Lock()
			s.initializing = false
			s.lock.Unlock()
			s.notify()
		}()

		refreshToken, err := s.store.Load()
		if err != nil {
			s.log.Warn().Err(err).Msg("session restore: failed to read stored refresh token")
			return
		}
		if refreshToken == "" {
			return
		}
		if _, err := s.Refresh(ctx); err != nil {
			s.log.Warn().Err(err).Msg("session restore failed")
		}
	})
}

// Login stores the refresh credential (when present) and installs the whole
// identity set atomically. Pure state assignment: it cannot fail upward, a
// store write failure is logged and the in-memory session is still set.
func (s *Session) Login(result LoginResult) {
	if result.RefreshToken != "" {
		if err := s.store.Save(result.RefreshToken); err != nil {
			s.log.Error().Err(err).Msg("failed to persist refresh token")
		}
	}
	s.setIdentity(result)
}

// Logout notifies the backend best-effort, then wipes the durable credential
// and the in-memory identity. Local termination always succeeds, whatever the
// backend does. Idempotent.
func (s *Session) Logout(ctx context.Context) {
	refreshToken, err := s.store.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("logout: failed to read stored refresh token")
	}
	if refreshToken != "" {
		if err := s.api.Logout(ctx, refreshToken); err != nil {
			s.log.Warn().Err(err).Msg("backend logout failed")
		}
	}
	s.clearIdentity()
}

// Refresh exchanges the stored refresh credential for a new access credential
// and identity set. On success all fields are replaced atomically and the new
// access token is returned. On backend failure the session and the durable
// credential are wiped before the error is returned.
func (s *Session) Refresh(ctx context.Context) (string, error) {
	refreshToken, err := s.store.Load()
	if err != nil {
		return "", errors.Wrap(err, "[Session.Refresh] store.Load")
	}
	if refreshToken == "" {
		return "", NoRefreshTokenErr
	}

	result, err := s.api.RefreshSession(ctx, refreshToken)
	if err != nil {
		s.clearIdentity()
		return "", errors.Wrapf(RefreshFailedErr, "[Session.Refresh] %v", err)
	}

	if result.RefreshToken != "" {
		if err := s.store.Save(result.RefreshToken); err != nil {
			s.log.Error().Err(err).Msg("failed to persist rotated refresh token")
		}
	}
	s.setIdentity(*result)
	return result.AccessToken, nil
}

// AccessToken is a pure read of the in-memory access credential.
func (s *Session) AccessToken() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.accessToken
}

// HasRefreshCredential reports whether a durable refresh credential is
// currently stored.
func (s *Session) HasRefreshCredential() bool {
	refreshToken, err := s.store.Load()
	return err == nil && refreshToken != ""
}

// Snapshot returns a value copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return Snapshot{
		AccessToken:     s.accessToken,
		Username:        s.username,
		Email:           s.email,
		Role:            s.role,
		IsAuthenticated: s.authenticated,
		IsInitializing:  s.initializing,
		ExpiresAt:       tokenExpiry(s.accessToken),
	}
}

func (s *Session) setIdentity(result LoginResult) {
	s.lock.Lock()
	s.accessToken = result.AccessToken
	s.username = result.Username
	s.email = result.Email
	s.role = result.Role
	s.authenticated = result.AccessToken != ""
	s.lock.Unlock()
	s.notify()
}

func (s *Session) clearIdentity() {
	if err := s.store.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear stored refresh token")
	}
	s.lock.Lock()
	s.accessToken = ""
	s.username = ""
	s.email = ""
	s.role = ""
	s.authenticated = false
	s.lock.Unlock()
	s.notify()
}

func (s *Session) notify() {
	if s.change == nil {
		return
	}
	s.change(s.Snapshot())
}

// tokenExpiry reads the exp claim without verifying the signature. Expiry is
// still only ever discovered by the backend rejecting the token; this value
// is informational.
func tokenExpiry(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
