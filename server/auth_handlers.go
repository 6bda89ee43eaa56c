package server

import (
	"net/http"
	"net/url"

	zlog "github.com/rs/zerolog/log"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	Error string
	Email string // Preserve email on error
}

// LoginPageHandler serves the login form.
func (s *Server) LoginPageHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
{{if .Error}}<p role="alert">{{.Error}}</p>{{end}}
<form method="post" action="/login">
  <label>Email <input type="email" name="email" value="{{.Email}}" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Log in</button>
</form>
<p>No account yet? <a href="/register">Register</a></p>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, "Log in", tmpl, LoginPageData{
			Error: r.URL.Query().Get("error"),
			Email: r.URL.Query().Get("email"),
		})
	}
}

// LoginSubmitHandler exchanges the form credentials for a token set and
// installs it in the session.
func (s *Server) LoginSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, RouteLogin+"?error="+url.QueryEscape("invalid form submission"), http.StatusSeeOther)
			return
		}
		email := r.PostFormValue("email")
		password := r.PostFormValue("password")

		result, err := s.auth.Login(r.Context(), email, password)
		if err != nil {
			zlog.Warn().Err(err).Str("email", email).Msg("login failed")
			query := url.Values{"error": {"invalid email or password"}, "email": {email}}
			http.Redirect(w, r, RouteLogin+"?"+query.Encode(), http.StatusSeeOther)
			return
		}

		s.session.Login(*result)
		http.Redirect(w, r, RouteHome, http.StatusSeeOther)
	}
}

// LogoutHandler terminates the session. Always succeeds locally, whatever
// the backend does.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.session.Logout(r.Context())
		http.Redirect(w, r, RouteHome, http.StatusSeeOther)
	}
}

// RegisterPageHandler serves the signup form.
func (s *Server) RegisterPageHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
{{if .Error}}<p role="alert">{{.Error}}</p>{{end}}
<form method="post" action="/register">
  <label>Username <input type="text" name="username" required></label>
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Register</button>
</form>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, "Register", tmpl, LoginPageData{Error: r.URL.Query().Get("error")})
	}
}

// RegisterSubmitHandler creates the account, then sends the visitor to the
// login form.
func (s *Server) RegisterSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, RouteRegister+"?error="+url.QueryEscape("invalid form submission"), http.StatusSeeOther)
			return
		}

		err := s.auth.Register(r.Context(),
			r.PostFormValue("username"),
			r.PostFormValue("email"),
			r.PostFormValue("password"),
		)
		if err != nil {
			zlog.Warn().Err(err).Msg("registration failed")
			http.Redirect(w, r, RouteRegister+"?error="+url.QueryEscape("registration failed"), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}
