package transport_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/broqhotels/broq-go/rest"
	"github.com/broqhotels/broq-go/session"
	"github.com/broqhotels/broq-go/tokenstore/storefake"
	"github.com/broqhotels/broq-go/transport"
	"github.com/stretchr/testify/require"
)

// testBackend is a fake broq backend: /protected accepts only the current
// access token, /api/auth/refresh rotates it.
type testBackend struct {
	lock          sync.Mutex
	accessToken   string
	refreshToken  string
	refreshCalls  int32
	protectedHits int32
	refreshDelay  time.Duration
	rejectRefresh bool
}

func (b *testBackend) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST "+rest.RouteRefresh, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.refreshCalls, 1)
		if b.refreshDelay > 0 {
			time.Sleep(b.refreshDelay)
		}
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		b.lock.Lock()
		defer b.lock.Unlock()
		if b.rejectRefresh || req.RefreshToken != b.refreshToken {
			http.Error(w, `{"error":"invalid refresh token"}`, http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(session.LoginResult{
			AccessToken:  b.accessToken,
			RefreshToken: b.refreshToken,
			Username:     "bob",
			Email:        "b@x.com",
			Role:         session.RoleUser,
		})
	})

	mux.HandleFunc("POST "+rest.RouteLogout, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/protected", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.protectedHits, 1)
		b.lock.Lock()
		want := "Bearer " + b.accessToken
		b.lock.Unlock()
		if r.Header.Get("Authorization") != want {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Echo-Body", string(body))
		w.Header().Set("Echo-Request-ID", r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusOK)
	})

	return mux
}

type pipelineFixture struct {
	backend   *testBackend
	server    *httptest.Server
	store     *storefake.FakeStore
	sess      *session.Session
	client    *http.Client
	invalided atomic.Int32
}

func setupPipelineFixture(t *testing.T, backend *testBackend) *pipelineFixture {
	t.Helper()

	server := httptest.NewServer(backend.handler(t))
	t.Cleanup(server.Close)

	store := storefake.NewFakeStore()
	authAPI, err := rest.NewAuthClient(server.URL)
	require.NoError(t, err)
	sess, err := session.New(store, authAPI)
	require.NoError(t, err)

	f := &pipelineFixture{backend: backend, server: server, store: store, sess: sess}

	tr, err := transport.New(sess,
		transport.WithSessionInvalid(func() { f.invalided.Add(1) }),
		transport.WithRefreshTimeout(5*time.Second),
	)
	require.NoError(t, err)
	f.client = tr.Client()
	return f
}

func (f *pipelineFixture) get(t *testing.T, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, f.server.URL+path, nil)
	require.NoError(t, err)
	resp, err := f.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestAttachesBearerAndRequestID(t *testing.T) {
	backend := &testBackend{accessToken: "A1", refreshToken: "R1"}
	f := setupPipelineFixture(t, backend)
	f.sess.Login(session.LoginResult{AccessToken: "A1", RefreshToken: "R1", Username: "bob", Email: "b@x.com", Role: session.RoleUser})

	resp := f.get(t, "/protected")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("Echo-Request-ID"))
	require.EqualValues(t, 0, atomic.LoadInt32(&backend.refreshCalls))
}

func TestExpiredTokenIsRefreshedTransparently(t *testing.T) {
	backend := &testBackend{accessToken: "A2", refreshToken: "R1"}
	f := setupPipelineFixture(t, backend)
	// The session still holds A1; the backend only accepts A2.
	f.sess.Login(session.LoginResult{AccessToken: "A1", RefreshToken: "R1", Username: "bob", Email: "b@x.com", Role: session.RoleUser})

	resp := f.get(t, "/protected")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "A2", f.sess.AccessToken())
	require.EqualValues(t, 1, atomic.LoadInt32(&backend.refreshCalls))
	require.Zero(t, f.invalided.Load())
}

func TestConcurrentExpiredRequestsShareOneRefresh(t *testing.T) {
	backend := &testBackend{accessToken: "A2", refreshToken: "R1", refreshDelay: 50 * time.Millisecond}
	f := setupPipelineFixture(t, backend)
	f.sess.Login(session.LoginResult{AccessToken: "A1", RefreshToken: "R1", Username: "bob", Email: "b@x.com", Role: session.RoleUser})

	const concurrency = 8
	var wg sync.WaitGroup
	statuses := make([]int, concurrency)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, f.server.URL+"/protected", nil)
			if err != nil {
				return
			}
			resp, err := f.client.Do(req)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	for _, status := range statuses {
		require.Equal(t, http.StatusOK, status)
	}
	require.EqualValues(t, 1, atomic.LoadInt32(&backend.refreshCalls))
}

func TestRepeatedRejectionPropagates401(t *testing.T) {
	backend := &testBackend{accessToken: "A2", refreshToken: "R1"}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case rest.RouteRefresh:
			atomic.AddInt32(&backend.refreshCalls, 1)
			_ = json.NewEncoder(w).Encode(session.LoginResult{AccessToken: "A2", Username: "bob", Email: "b@x.com", Role: session.RoleUser})
		default:
			// Rejects even fresh credentials.
			atomic.AddInt32(&backend.protectedHits, 1)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}
	}))
	t.Cleanup(server.Close)

	store := storefake.NewFakeStore()
	require.NoError(t, store.Save("R1"))
	authAPI, err := rest.NewAuthClient(server.URL)
	require.NoError(t, err)
	sess, err := session.New(store, authAPI)
	require.NoError(t, err)
	sess.Login(session.LoginResult{AccessToken: "A1", RefreshToken: "R1", Username: "bob", Email: "b@x.com", Role: session.RoleUser})

	tr, err := transport.New(sess)
	require.NoError(t, err)

	resp, err := tr.Client().Get(server.URL + "/protected")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	// Original attempt plus exactly one retry.
	require.EqualValues(t, 2, atomic.LoadInt32(&backend.protectedHits))
	require.EqualValues(t, 1, atomic.LoadInt32(&backend.refreshCalls))
}

func TestNoRefreshCredentialTerminatesSession(t *testing.T) {
	backend := &testBackend{accessToken: "A2", refreshToken: "R1"}
	f := setupPipelineFixture(t, backend)
	// Authenticated in memory only: no durable refresh credential.
	f.sess.Login(session.LoginResult{AccessToken: "A1", Username: "bob", Email: "b@x.com", Role: session.RoleUser})

	resp := f.get(t, "/protected")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.EqualValues(t, 1, f.invalided.Load())
	require.False(t, f.sess.Snapshot().IsAuthenticated)
	require.EqualValues(t, 0, atomic.LoadInt32(&backend.refreshCalls))
}

func TestRefreshFailureFailsRequestAndSignals(t *testing.T) {
	backend := &testBackend{accessToken: "A2", refreshToken: "R1", rejectRefresh: true}
	f := setupPipelineFixture(t, backend)
	f.sess.Login(session.LoginResult{AccessToken: "A1", RefreshToken: "R_expired", Username: "bob", Email: "b@x.com", Role: session.RoleUser})

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, f.server.URL+"/protected", nil)
	require.NoError(t, err)
	_, err = f.client.Do(req)
	require.Error(t, err)
	require.ErrorIs(t, err, session.RefreshFailedErr)

	require.EqualValues(t, 1, f.invalided.Load())
	require.False(t, f.sess.Snapshot().IsAuthenticated)
	require.False(t, f.store.Contains())
}

func TestPostBodyIsReplayedOnRetry(t *testing.T) {
	backend := &testBackend{accessToken: "A2", refreshToken: "R1"}
	f := setupPipelineFixture(t, backend)
	f.sess.Login(session.LoginResult{AccessToken: "A1", RefreshToken: "R1", Username: "bob", Email: "b@x.com", Role: session.RoleUser})

	const payload = `{"roomId":"room-7"}`
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, f.server.URL+"/protected", strings.NewReader(payload))
	require.NoError(t, err)

	resp, err := f.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// First attempt was rejected, the retry carried the body again.
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, payload, resp.Header.Get("Echo-Body"))
	require.EqualValues(t, 1, atomic.LoadInt32(&backend.refreshCalls))
	require.EqualValues(t, 2, atomic.LoadInt32(&backend.protectedHits))
}
