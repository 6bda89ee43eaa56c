package server

import (
	"net/http"

	"github.com/broqhotels/broq-go/rest"
)

// AdminDashboardHandler gives admins an overview of bookings and users.
func (s *Server) AdminDashboardHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<p>{{.Bookings}} bookings · {{.Users}} registered users</p>
<ul>
  <li><a href="/admin/foods">Manage foods</a></li>
  <li><a href="/admin/rooms">Manage rooms</a></li>
  <li><a href="/admin/activities">Manage activities</a></li>
  <li><a href="/admin/bookings">All bookings</a></li>
  <li><a href="/admin/users">All users</a></li>
</ul>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := s.api.AdminBookings(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load bookings")
			return
		}
		users, err := s.api.AdminUsers(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load users")
			return
		}
		s.renderPage(w, "Admin Dashboard", tmpl, map[string]int{
			"Bookings": len(bookings),
			"Users":    len(users),
		})
	}
}

// AdminFoodsHandler lists foods with create and delete controls.
func (s *Server) AdminFoodsHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<table>
  <tr><th>Name</th><th>Category</th><th>Price</th><th></th></tr>
{{range .}}
  <tr>
    <td>{{.Name}}</td><td>{{.Category}}</td><td>{{printf "%.2f" .Price}}</td>
    <td><form method="post" action="/admin/foods/delete"><input type="hidden" name="id" value="{{.ID}}"><button type="submit">Delete</button></form></td>
  </tr>
{{end}}
</table>
<h2>New food</h2>
<form method="post" action="/admin/foods">
  <label>Name <input type="text" name="name" required></label>
  <label>Category <input type="text" name="category"></label>
  <label>Price <input type="number" name="price" step="0.01" required></label>
  <button type="submit">Create</button>
</form>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		foods, err := s.api.Foods(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load foods")
			return
		}
		s.renderPage(w, "Admin · Foods", tmpl, foods)
	}
}

// AdminFoodCreateHandler creates a food item from the admin form.
func (s *Server) AdminFoodCreateHandler() http.HandlerFunc {
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

		_, err = s.api.AdminCreateFood(r.Context(), rest.Food{
			Name:     r.PostFormValue("name"),
			Category: r.PostFormValue("category"),
			Price:    price,
		})
		if err != nil {
			s.backendError(w, err, "failed to create food")
			return
		}
		http.Redirect(w, r, RouteAdminFoods, http.StatusSeeOther)
	}
}

// AdminFoodDeleteHandler deletes a food item.
func (s *Server) AdminFoodDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.api.AdminDeleteFood(r.Context(), r.PostFormValue("id")); err != nil {
			s.backendError(w, err, "failed to delete food")
			return
		}
		http.Redirect(w, r, RouteAdminFoods, http.StatusSeeOther)
	}
}

// AdminBookingsHandler lists every booking in the system.
func (s *Server) AdminBookingsHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<table>
  <tr><th>ID</th><th>Room</th><th>Check-in</th><th>Check-out</th><th>Status</th></tr>
{{range .}}
  <tr><td>{{.ID}}</td><td>{{.RoomName}}</td><td>{{.CheckInDate}}</td><td>{{.CheckOutDate}}</td><td>{{.Status}}</td></tr>
{{else}}
  <tr><td colspan="5">No bookings.</td></tr>
{{end}}
</table>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := s.api.AdminBookings(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load bookings")
			return
		}
		s.renderPage(w, "Admin · Bookings", tmpl, bookings)
	}
}

// AdminUsersHandler lists every user account.
func (s *Server) AdminUsersHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<table>
  <tr><th>Username</th><th>Email</th><th>Role</th></tr>
{{range .}}
  <tr><td>{{.Username}}</td><td>{{.Email}}</td><td>{{.Role}}</td></tr>
{{else}}
  <tr><td colspan="3">No users.</td></tr>
{{end}}
</table>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		users, err := s.api.AdminUsers(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load users")
			return
		}
		s.renderPage(w, "Admin · Users", tmpl, users)
	}
}
