package server

import (
	"html/template"
	"net/http"

	"github.com/broqhotels/broq-go/session"
	zlog "github.com/rs/zerolog/log"
)

const contentTypeHTML = "text/html; charset=utf-8"

const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}} · Broq</title>
</head>
<body>
  <header>
    <nav>
      <a href="/">Home</a>
      <a href="/foods">Dining</a>
      <a href="/rooms">Rooms</a>
      <a href="/activities">Activities</a>
      <a href="/cart">Cart</a>
      {{if .User.IsAuthenticated}}
        <a href="/my-bookings">My Bookings</a>
        <a href="/my-orders">My Orders</a>
        <a href="/profile">{{.User.Username}}</a>
        {{if eq .User.Role "ADMIN"}}<a href="/admin/dashboard">Admin</a>{{end}}
        <form method="post" action="/logout"><button type="submit">Log out</button></form>
      {{else}}
        <a href="/login">Log in</a>
        <a href="/register">Register</a>
      {{end}}
    </nav>
  </header>
  <main>
    <h1>{{.Title}}</h1>
    {{template "content" .Data}}
  </main>
</body>
</html>`

const loadingTemplate = `{{define "content"}}<p>Loading…</p>{{end}}`

type pageData struct {
	Title string
	User  session.Snapshot
	Data  any
}

// parsePage combines the shared layout with a page's content template.
// Called once per page at startup; a broken template is a programming error.
func parsePage(content string) *template.Template {
	tmpl := template.Must(template.New("layout").Parse(layoutTemplate))
	return template.Must(tmpl.Parse(content))
}

var loadingPage = parsePage(loadingTemplate)

func (s *Server) renderPage(w http.ResponseWriter, title string, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", contentTypeHTML)
	err := tmpl.Execute(w, pageData{
		Title: title,
		User:  s.session.Snapshot(),
		Data:  data,
	})
	if err != nil {
		zlog.Error().Err(err).Str("page", title).Msg("failed to render page")
	}
}
