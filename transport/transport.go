// Package transport is the authenticated request pipeline: it attaches the
// session's access credential to every outgoing call and transparently
// recovers from credential expiry by coordinating a single refresh across
// all concurrent requests, retrying each originating request at most once.
package transport

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/broqhotels/broq-go/session"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	requestIDHeader = "X-Request-ID"
	refreshKey      = "refresh"

	defaultRefreshTimeout = 15 * time.Second
)

// SessionAuth is the narrow session surface the pipeline depends on.
type SessionAuth interface {
	AccessToken() string
	Refresh(ctx context.Context) (string, error)
	Logout(ctx context.Context)
}

// AuthTransport is an http.RoundTripper wrapping a base transport. On a 401
// it asks the coordinator for a fresh access credential and resends the
// original request exactly once; a second 401 for the same request is
// returned as-is. It never navigates: session invalidation is reported
// through the OnSessionInvalid callback and routing stays with the caller.
type AuthTransport struct {
	session        SessionAuth
	base           http.RoundTripper
	log            zerolog.Logger
	invalid        func()
	refreshTimeout time.Duration

	// refreshGroup collapses concurrent refresh attempts into one backend
	// call; every waiter observes the same outcome and the slot clears
	// before any new refresh may start.
	refreshGroup singleflight.Group
}

var _ http.RoundTripper = (*AuthTransport)(nil)

// TransportOption configures optional AuthTransport behaviour.
type TransportOption func(*AuthTransport)

// WithBase sets the underlying RoundTripper (default http.DefaultTransport).
func WithBase(base http.RoundTripper) TransportOption {
	return func(t *AuthTransport) {
		t.base = base
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(log zerolog.Logger) TransportOption {
	return func(t *AuthTransport) {
		t.log = log
	}
}

// WithSessionInvalid registers the callback invoked when the pipeline has
// given up on the session (no refresh credential, or refresh failed). The
// application root owns what happens next, typically a redirect to login.
func WithSessionInvalid(callback func()) TransportOption {
	return func(t *AuthTransport) {
		t.invalid = callback
	}
}

// WithRefreshTimeout bounds the coordinated refresh call, and with it how
// long piled-up requests may wait.
func WithRefreshTimeout(timeout time.Duration) TransportOption {
	return func(t *AuthTransport) {
		t.refreshTimeout = timeout
	}
}

// New creates the authenticated pipeline around the given session.
func New(sess SessionAuth, options ...TransportOption) (*AuthTransport, error) {
	if sess == nil {
		return nil, errors.New("[transport.New] session is required")
	}
	t := &AuthTransport{
		session:        sess,
		base:           http.DefaultTransport,
		log:            zerolog.Nop(),
		refreshTimeout: defaultRefreshTimeout,
	}
	for _, opt := range options {
		opt(t)
	}
	return t, nil
}

// Client returns an http.Client running every call through the pipeline.
func (t *AuthTransport) Client() *http.Client {
	return &http.Client{Transport: t}
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	authed := t.prepare(req, t.session.AccessToken())

	resp, err := t.base.RoundTrip(authed)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// One recovery attempt per originating request. The retried response is
	// returned below without re-entering this branch, so a request that is
	// rejected again with a fresh credential fails to the caller.
	accessToken, refreshErr := t.refreshAccessToken(req.Context())
	if refreshErr != nil {
		if errors.Is(refreshErr, session.NoRefreshTokenErr) {
			// Nothing to recover with: terminate the local session and hand
			// the original 401 back.
			t.session.Logout(req.Context())
			t.notifyInvalid()
			return resp, nil
		}
		t.log.Warn().Err(refreshErr).Str("path", req.URL.Path).Msg("token refresh failed")
		drainAndClose(resp)
		t.notifyInvalid()
		return nil, refreshErr
	}

	retry, ok := t.replayable(req)
	if !ok {
		// Body cannot be replayed; the caller gets the original 401.
		return resp, nil
	}
	drainAndClose(resp)

	t.log.Debug().Str("path", req.URL.Path).Msg("retrying request with refreshed token")
	return t.base.RoundTrip(t.prepare(retry, accessToken))
}

// refreshAccessToken funnels all concurrent callers through one in-flight
// session refresh. The shared call runs on its own bounded context so one
// caller's cancellation cannot fail every waiter.
func (t *AuthTransport) refreshAccessToken(ctx context.Context) (string, error) {
	result, err, _ := t.refreshGroup.Do(refreshKey, func() (interface{}, error) {
		refreshCtx, cancel := context.WithTimeout(context.Background(), t.refreshTimeout)
		defer cancel()
		return t.session.Refresh(refreshCtx)
	})
	if err != nil {
		return "", err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	return result.(string), nil
}

// prepare clones the request and attaches the bearer credential (when one is
// held) plus a request ID. RoundTrippers must not mutate the caller's request.
func (t *AuthTransport) prepare(req *http.Request, accessToken string) *http.Request {
	clone := req.Clone(req.Context())
	if accessToken != "" {
		clone.Header.Set("Authorization", "Bearer "+accessToken)
	} else {
		clone.Header.Del("Authorization")
	}
	if clone.Header.Get(requestIDHeader) == "" {
		clone.Header.Set(requestIDHeader, uuid.New().String())
	}
	return clone
}

// replayable rebuilds the original request for the retry. Requests carrying
// a one-shot body without GetBody cannot be resent.
func (t *AuthTransport) replayable(req *http.Request) (*http.Request, bool) {
	retry := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return retry, true
	}
	if req.GetBody == nil {
		return nil, false
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, false
	}
	retry.Body = body
	return retry, true
}

func (t *AuthTransport) notifyInvalid() {
	if t.invalid != nil {
		t.invalid()
	}
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
	_ = resp.Body.Close()
}
