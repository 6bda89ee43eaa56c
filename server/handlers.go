package server

import (
	"net/http"

	zlog "github.com/rs/zerolog/log"
)

// IndexHandler renders the home page
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<p>Welcome to {{.AppName}} — dining, rooms and activities under one roof.</p>
<ul>
  <li><a href="/foods">Browse the menu</a></li>
  <li><a href="/rooms">Find a room</a></li>
  <li><a href="/activities">Plan an activity</a></li>
</ul>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != RouteHome {
			http.NotFound(w, r)
			return
		}
		s.renderPage(w, "Welcome", tmpl, map[string]any{"AppName": s.config.GetAppName()})
	}
}

// FoodsHandler renders the public menu with add-to-cart forms.
func (s *Server) FoodsHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<ul>
{{range .}}
  <li>
    {{.Name}} — {{printf "%.2f" .Price}}
    <form method="post" action="/cart/add">
      <input type="hidden" name="id" value="{{.ID}}">
      <input type="hidden" name="name" value="{{.Name}}">
      <input type="hidden" name="price" value="{{.Price}}">
      <button type="submit">Add to cart</button>
    </form>
  </li>
{{else}}
  <li>Nothing on the menu right now.</li>
{{end}}
</ul>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		foods, err := s.api.Foods(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load foods")
			return
		}
		s.renderPage(w, "Dining", tmpl, foods)
	}
}

// RoomsHandler renders the room catalogue with booking forms.
func (s *Server) RoomsHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<ul>
{{range .}}
  <li>
    {{.Name}} ({{.Type}}) — {{printf "%.2f" .Price}} per night, sleeps {{.Capacity}}
    <form method="post" action="/rooms/book">
      <input type="hidden" name="roomId" value="{{.ID}}">
      <input type="hidden" name="price" value="{{.Price}}">
      <label>Check-in <input type="date" name="checkIn" required></label>
      <label>Check-out <input type="date" name="checkOut" required></label>
      <button type="submit">Book</button>
    </form>
  </li>
{{else}}
  <li>No rooms available.</li>
{{end}}
</ul>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		rooms, err := s.api.Rooms(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load rooms")
			return
		}
		s.renderPage(w, "Rooms", tmpl, rooms)
	}
}

// ActivitiesHandler renders the activity catalogue.
func (s *Server) ActivitiesHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<ul>
{{range .}}
  <li>{{.Name}} — {{.Location}}, {{.Duration}}, {{printf "%.2f" .Price}} (max {{.MaxParticipants}} participants)</li>
{{else}}
  <li>No activities scheduled.</li>
{{end}}
</ul>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		activities, err := s.api.Activities(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load activities")
			return
		}
		s.renderPage(w, "Activities", tmpl, activities)
	}
}

// UnauthorizedHandler renders the page under-privileged users land on.
func (s *Server) UnauthorizedHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<p>You do not have access to that page.</p>
<p><a href="/">Back to the storefront</a></p>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		s.renderPage(w, "Unauthorized", tmpl, nil)
	}
}

// backendError reports a non-auth backend failure to the visitor. Auth
// failures never get here: the pipeline resolves them or the guard redirects.
func (s *Server) backendError(w http.ResponseWriter, err error, msg string) {
	zlog.Error().Err(err).Msg(msg)
	http.Error(w, "the backend is unavailable, please try again shortly", http.StatusBadGateway)
}
