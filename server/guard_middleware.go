package server

import (
	"net/http"

	"github.com/broqhotels/broq-go/guard"
	"github.com/broqhotels/broq-go/session"
)

// RequireView gates a page behind the route guard. Evaluated on every
// navigation against a fresh session snapshot.
func (s *Server) RequireView(req guard.Requirement) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			switch guard.Evaluate(s.session.Snapshot(), req) {
			case guard.Pending:
				// Session restore still running: neutral loading state.
				w.Header().Set("Content-Type", contentTypeHTML)
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusServiceUnavailable)
				s.renderPage(w, "Loading", loadingPage, nil)
			case guard.RedirectLogin:
				http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
			case guard.RedirectUnauthorized:
				http.Redirect(w, r, RouteUnauthorized, http.StatusSeeOther)
			case guard.Allow:
				next(w, r)
			}
		}
	}
}

// RequireAuth gates a page behind any authenticated session.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return s.RequireView(guard.Requirement{RequiresAuth: true})
}

// RequireAdmin gates a page behind the ADMIN role.
func (s *Server) RequireAdmin() func(http.HandlerFunc) http.HandlerFunc {
	return s.RequireView(guard.Requirement{RequiresAuth: true, RequiredRole: session.RoleAdmin})
}
