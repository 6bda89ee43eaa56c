package server

import (
	"net/http"
	"strconv"

	"github.com/broqhotels/broq-go/rest"
)

// AdminRoomsHandler lists rooms with create and delete controls.
func (s *Server) AdminRoomsHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<table>
  <tr><th>Name</th><th>Type</th><th>Price</th><th>Capacity</th><th></th></tr>
{{range .}}
  <tr>
    <td>{{.Name}}</td><td>{{.Type}}</td><td>{{printf "%.2f" .Price}}</td><td>{{.Capacity}}</td>
    <td><form method="post" action="/admin/rooms/delete"><input type="hidden" name="id" value="{{.ID}}"><button type="submit">Delete</button></form></td>
  </tr>
{{end}}
</table>
<h2>New room</h2>
<form method="post" action="/admin/rooms">
  <label>Name <input type="text" name="name" required></label>
  <label>Type <input type="text" name="type"></label>
  <label>Price per night <input type="number" name="price" step="0.01" required></label>
  <label>Capacity <input type="number" name="capacity"></label>
  <button type="submit">Create</button>
</form>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		rooms, err := s.api.Rooms(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load rooms")
			return
		}
		s.renderPage(w, "Admin · Rooms", tmpl, rooms)
	}
}

// AdminRoomCreateHandler creates a room from the admin form.
func (s *Server) AdminRoomCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		price, err := parsePrice(r.PostFormValue("price"))
		if err != nil {
			http.Error(w, "invalid price", http.StatusBadRequest)
			return
		}
		capacity, _ := strconv.Atoi(r.PostFormValue("capacity"))

		_, err = s.api.AdminCreateRoom(r.Context(), rest.Room{
			Name:     r.PostFormValue("name"),
			Type:     r.PostFormValue("type"),
			Price:    price,
			Capacity: capacity,
		})
		if err != nil {
			s.backendError(w, err, "failed to create room")
			return
		}
		http.Redirect(w, r, RouteAdminRooms, http.StatusSeeOther)
	}
}

// AdminRoomDeleteHandler deletes a room.
func (s *Server) AdminRoomDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.api.AdminDeleteRoom(r.Context(), r.PostFormValue("id")); err != nil {
			s.backendError(w, err, "failed to delete room")
			return
		}
		http.Redirect(w, r, RouteAdminRooms, http.StatusSeeOther)
	}
}

// AdminActivitiesHandler lists activities with create and delete controls.
func (s *Server) AdminActivitiesHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<table>
  <tr><th>Name</th><th>Location</th><th>Duration</th><th>Price</th><th></th></tr>
{{range .}}
  <tr>
    <td>{{.Name}}</td><td>{{.Location}}</td><td>{{.Duration}}</td><td>{{printf "%.2f" .Price}}</td>
    <td><form method="post" action="/admin/activities/delete"><input type="hidden" name="id" value="{{.ID}}"><button type="submit">Delete</button></form></td>
  </tr>
{{end}}
</table>
<h2>New activity</h2>
<form method="post" action="/admin/activities">
  <label>Name <input type="text" name="name" required></label>
  <label>Location <input type="text" name="location"></label>
  <label>Duration <input type="text" name="duration"></label>
  <label>Price <input type="number" name="price" step="0.01" required></label>
  <label>Max participants <input type="number" name="maxParticipants"></label>
  <button type="submit">Create</button>
</form>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		activities, err := s.api.Activities(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load activities")
			return
		}
		s.renderPage(w, "Admin · Activities", tmpl, activities)
	}
}

// AdminActivityCreateHandler creates an activity from the admin form.
func (s *Server) AdminActivityCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		price, err := parsePrice(r.PostFormValue("price"))
		if err != nil {
			http.Error(w, "invalid price", http.StatusBadRequest)
			return
		}
		maxParticipants, _ := strconv.Atoi(r.PostFormValue("maxParticipants"))

		_, err = s.api.AdminCreateActivity(r.Context(), rest.Activity{
			Name:            r.PostFormValue("name"),
			Location:        r.PostFormValue("location"),
			Duration:        r.PostFormValue("duration"),
			Price:           price,
			MaxParticipants: maxParticipants,
		})
		if err != nil {
			s.backendError(w, err, "failed to create activity")
			return
		}
		http.Redirect(w, r, RouteAdminActivities, http.StatusSeeOther)
	}
}

// AdminActivityDeleteHandler deletes an activity.
func (s *Server) AdminActivityDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.api.AdminDeleteActivity(r.Context(), r.PostFormValue("id")); err != nil {
			s.backendError(w, err, "failed to delete activity")
			return
		}
		http.Redirect(w, r, RouteAdminActivities, http.StatusSeeOther)
	}
}
