package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/broqhotels/broq-go/cart"
	"github.com/broqhotels/broq-go/internal/config"
	"github.com/broqhotels/broq-go/rest"
	"github.com/broqhotels/broq-go/session"
	"github.com/broqhotels/broq-go/tokenstore"
	"github.com/broqhotels/broq-go/transport"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
)

// Server is the storefront frontend. It owns the session, the cart and the
// authenticated backend client, and it owns navigation: the request pipeline
// reports an invalid session, the guard middleware here decides where the
// visitor goes.
type Server struct {
	env    string // Environment (e.g., "DEV", "production")
	mux    *http.ServeMux
	routes []string
	config config.Config

	auth *rest.AuthClient
	api  *rest.Client

	session *session.Session
	cart    *cart.Cart
}

// New wires the whole client stack: token store, session, refresh-coordinated
// pipeline, backend client, cart, routes.
func New(cfg config.Config) (*Server, error) {
	store := tokenstore.NewFileStore(cfg.GetDataFolder(), cfg.GetRefreshStorageKey())
	cartStore := tokenstore.NewFileStore(cfg.GetDataFolder(), cfg.GetCartStorageKey())

	authClient, err := rest.NewAuthClient(cfg.GetBackendURL())
	if err != nil {
		return nil, errors.Wrap(err, "[server.New] auth client")
	}

	sess, err := session.New(store, authClient, session.WithLogger(zlog.Logger))
	if err != nil {
		return nil, errors.Wrap(err, "[server.New] session")
	}

	pipeline, err := transport.New(sess,
		transport.WithLogger(zlog.Logger),
		transport.WithRefreshTimeout(time.Duration(cfg.GetRefreshTimeoutSeconds())*time.Second),
		transport.WithSessionInvalid(func() {
			zlog.Warn().Msg("session invalidated; guarded pages will redirect to login")
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[server.New] transport")
	}

	api, err := rest.NewClient(cfg.GetBackendURL(),
		rest.WithHTTPClient(pipeline.Client()),
		rest.WithClientLogger(zlog.Logger),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[server.New] rest client")
	}

	s := &Server{
		env:     cfg.GetEnv(),
		mux:     http.NewServeMux(),
		config:  cfg,
		auth:    authClient,
		api:     api,
		session: sess,
		cart:    cart.New(cartStore, cart.WithLogger(zlog.Logger)),
	}

	// One-time restore from the durable refresh credential. Runs in the
	// background; guarded pages render a retry page until it settles.
	go s.session.Initialize(context.Background())

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
