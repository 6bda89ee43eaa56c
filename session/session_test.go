package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/broqhotels/broq-go/session"
	"github.com/broqhotels/broq-go/tokenstore/storefake"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeAuthAPI struct {
	lock         sync.Mutex
	refreshCalls int
	logoutCalls  int
	refreshFn    func(refreshToken string) (*session.LoginResult, error)
	logoutErr    error
}

func (f *fakeAuthAPI) RefreshSession(_ context.Context, refreshToken string) (*session.LoginResult, error) {
	f.lock.Lock()
	f.refreshCalls++
	f.lock.Unlock()
	if f.refreshFn == nil {
		return nil, errors.New("unexpected refresh call")
	}
	return f.refreshFn(refreshToken)
}

func (f *fakeAuthAPI) Logout(_ context.Context, _ string) error {
	f.lock.Lock()
	f.logoutCalls++
	f.lock.Unlock()
	return f.logoutErr
}

func (f *fakeAuthAPI) calls() (refresh, logout int) {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.refreshCalls, f.logoutCalls
}

type testFixture struct {
	store *storefake.FakeStore
	api   *fakeAuthAPI
	sess  *session.Session
}

func setupTestFixture(t *testing.T, options ...session.Option) *testFixture {
	t.Helper()

	store := storefake.NewFakeStore()
	api := &fakeAuthAPI{}
	sess, err := session.New(store, api, options...)
	require.NoError(t, err)

	return &testFixture{store: store, api: api, sess: sess}
}

func bobLogin() session.LoginResult {
	return session.LoginResult{
		AccessToken:  "A1",
		RefreshToken: "R1",
		Username:     "bob",
		Email:        "b@x.com",
		Role:         session.RoleUser,
	}
}

func TestLoginPersistsRefreshTokenAndSetsIdentity(t *testing.T) {
	f := setupTestFixture(t)

	f.sess.Login(bobLogin())

	stored, err := f.store.Load()
	require.NoError(t, err)
	require.Equal(t, "R1", stored)
	require.Equal(t, "A1", f.sess.AccessToken())

	snap := f.sess.Snapshot()
	require.True(t, snap.IsAuthenticated)
	require.Equal(t, "bob", snap.Username)
	require.Equal(t, "b@x.com", snap.Email)
	require.Equal(t, session.RoleUser, snap.Role)
}

func TestLogoutClearsStateEvenWhenBackendFails(t *testing.T) {
	f := setupTestFixture(t)
	f.api.logoutErr = errors.New("backend unreachable")
	f.sess.Login(bobLogin())

	f.sess.Logout(context.Background())

	snap := f.sess.Snapshot()
	require.False(t, snap.IsAuthenticated)
	require.Empty(t, f.sess.AccessToken())
	require.False(t, f.store.Contains())

	_, logouts := f.api.calls()
	require.Equal(t, 1, logouts)
}

func TestLogoutIsIdempotentAndSkipsBackendWithoutCredential(t *testing.T) {
	f := setupTestFixture(t)

	f.sess.Logout(context.Background())
	f.sess.Logout(context.Background())

	_, logouts := f.api.calls()
	require.Zero(t, logouts)
	require.False(t, f.sess.Snapshot().IsAuthenticated)
}

func TestRefreshWithoutStoredCredential(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.sess.Refresh(context.Background())
	require.ErrorIs(t, err, session.NoRefreshTokenErr)
}

func TestRefreshRotatesCredentialAndReplacesIdentity(t *testing.T) {
	f := setupTestFixture(t)
	f.sess.Login(bobLogin())
	f.api.refreshFn = func(refreshToken string) (*session.LoginResult, error) {
		require.Equal(t, "R1", refreshToken)
		return &session.LoginResult{
			AccessToken:  "A2",
			RefreshToken: "R2",
			Username:     "bob",
			Email:        "b@x.com",
			Role:         session.RoleUser,
		}, nil
	}

	accessToken, err := f.sess.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, "A2", accessToken)
	require.Equal(t, "A2", f.sess.AccessToken())

	stored, err := f.store.Load()
	require.NoError(t, err)
	require.Equal(t, "R2", stored)
}

func TestRefreshKeepsCredentialWhenBackendOmitsRotation(t *testing.T) {
	f := setupTestFixture(t)
	f.sess.Login(bobLogin())
	f.api.refreshFn = func(string) (*session.LoginResult, error) {
		return &session.LoginResult{
			AccessToken: "A2",
			Username:    "bob",
			Email:       "b@x.com",
			Role:        session.RoleUser,
		}, nil
	}

	_, err := f.sess.Refresh(context.Background())
	require.NoError(t, err)

	stored, err := f.store.Load()
	require.NoError(t, err)
	require.Equal(t, "R1", stored)
}

func TestRefreshFailureWipesSessionAndStore(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.store.Save("R_expired"))
	f.api.refreshFn = func(string) (*session.LoginResult, error) {
		return nil, errors.New("invalid refresh token")
	}

	_, err := f.sess.Refresh(context.Background())
	require.ErrorIs(t, err, session.RefreshFailedErr)
	require.False(t, f.sess.Snapshot().IsAuthenticated)
	require.False(t, f.store.Contains())
}

func TestInitializeRestoresSessionFromStoredCredential(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.store.Save("R1"))
	f.api.refreshFn = func(string) (*session.LoginResult, error) {
		return &session.LoginResult{
			AccessToken:  "A1",
			RefreshToken: "R2",
			Username:     "bob",
			Email:        "b@x.com",
			Role:         session.RoleAdmin,
		}, nil
	}

	require.True(t, f.sess.Snapshot().IsInitializing)
	f.sess.Initialize(context.Background())

	snap := f.sess.Snapshot()
	require.False(t, snap.IsInitializing)
	require.True(t, snap.IsAuthenticated)
	require.Equal(t, session.RoleAdmin, snap.Role)
}

func TestInitializeWithInvalidCredentialStartsUnauthenticated(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.store.Save("R_expired"))
	f.api.refreshFn = func(string) (*session.LoginResult, error) {
		return nil, errors.New("invalid refresh token")
	}

	f.sess.Initialize(context.Background())

	snap := f.sess.Snapshot()
	require.False(t, snap.IsInitializing)
	require.False(t, snap.IsAuthenticated)
	require.False(t, f.store.Contains())
}

func TestInitializeWithoutStoredCredentialDoesNotCallBackend(t *testing.T) {
	f := setupTestFixture(t)

	f.sess.Initialize(context.Background())

	refreshes, _ := f.api.calls()
	require.Zero(t, refreshes)
	require.False(t, f.sess.Snapshot().IsInitializing)
}

func TestInitializeRunsOnce(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.store.Save("R1"))
	f.api.refreshFn = func(string) (*session.LoginResult, error) {
		return &session.LoginResult{AccessToken: "A1", Username: "bob", Email: "b@x.com", Role: session.RoleUser}, nil
	}

	f.sess.Initialize(context.Background())
	f.sess.Initialize(context.Background())

	refreshes, _ := f.api.calls()
	require.Equal(t, 1, refreshes)
}

func TestSnapshotNeverMixesIdentities(t *testing.T) {
	f := setupTestFixture(t)
	f.sess.Login(bobLogin())
	f.api.refreshFn = func(string) (*session.LoginResult, error) {
		return &session.LoginResult{
			AccessToken:  "A2",
			RefreshToken: "R2",
			Username:     "alice",
			Email:        "a@x.com",
			Role:         session.RoleAdmin,
		}, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			snap := f.sess.Snapshot()
			if snap.AccessToken == "A1" {
				require.Equal(t, "bob", snap.Username)
				require.Equal(t, session.RoleUser, snap.Role)
			}
			if snap.AccessToken == "A2" {
				require.Equal(t, "alice", snap.Username)
				require.Equal(t, session.RoleAdmin, snap.Role)
			}
		}
	}()

	_, err := f.sess.Refresh(context.Background())
	require.NoError(t, err)
	<-done
}

func TestChangeHookObservesEverySwap(t *testing.T) {
	var (
		lock  sync.Mutex
		snaps []session.Snapshot
	)
	f := setupTestFixture(t, session.WithChangeHook(func(snap session.Snapshot) {
		lock.Lock()
		snaps = append(snaps, snap)
		lock.Unlock()
	}))

	f.sess.Login(bobLogin())
	f.sess.Logout(context.Background())

	lock.Lock()
	defer lock.Unlock()
	require.Len(t, snaps, 2)
	require.True(t, snaps[0].IsAuthenticated)
	require.False(t, snaps[1].IsAuthenticated)
}

func TestTokenSource(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.sess.TokenSource().Token()
	require.ErrorIs(t, err, session.NotAuthenticatedErr)

	f.sess.Login(bobLogin())
	token, err := f.sess.TokenSource().Token()
	require.NoError(t, err)
	require.Equal(t, "A1", token.AccessToken)
	require.Equal(t, "Bearer", token.TokenType)
}

func TestSnapshotExposesJWTExpiry(t *testing.T) {
	expiry := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "bob",
		"exp": expiry.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	f := setupTestFixture(t)
	f.sess.Login(session.LoginResult{AccessToken: raw, Username: "bob", Email: "b@x.com", Role: session.RoleUser})

	require.True(t, f.sess.Snapshot().ExpiresAt.Equal(expiry))
}

func TestSnapshotExpiryEmptyForOpaqueToken(t *testing.T) {
	f := setupTestFixture(t)
	f.sess.Login(bobLogin())
	require.True(t, f.sess.Snapshot().ExpiresAt.IsZero())
}
