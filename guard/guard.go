// Package guard decides whether a session may enter a protected view. The
// decision is a pure function of a session snapshot and the view's declared
// requirements, evaluated on every navigation; acting on the decision
// (redirects, loading states) stays with the caller.
package guard

import "github.com/broqhotels/broq-go/session"

// Requirement declares what a view demands of the session. The zero value
// is a public view.
type Requirement struct {
	RequiresAuth bool
	RequiredRole session.Role // empty means any authenticated user
}

// Decision is the outcome of evaluating a navigation.
type Decision int

const (
	// Pending means the session is still restoring; render a neutral
	// loading state and decide nothing yet.
	Pending Decision = iota
	// Allow renders the protected view.
	Allow
	// RedirectLogin sends an unauthenticated visitor to the login view.
	RedirectLogin
	// RedirectUnauthorized sends an under-privileged user to the
	// unauthorized view.
	RedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectUnauthorized:
		return "redirect-unauthorized"
	}
	return "unknown"
}

// Evaluate gates one navigation against one view's requirements.
func Evaluate(snap session.Snapshot, req Requirement) Decision {
	if !req.RequiresAuth && req.RequiredRole == "" {
		return Allow
	}
	if snap.IsInitializing {
		return Pending
	}
	if !snap.IsAuthenticated {
		return RedirectLogin
	}
	if req.RequiredRole != "" && snap.Role != req.RequiredRole {
		return RedirectUnauthorized
	}
	return Allow
}
