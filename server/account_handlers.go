package server

import (
	"net/http"
	"time"

	"github.com/broqhotels/broq-go/cart"
	"github.com/broqhotels/broq-go/rest"
	zlog "github.com/rs/zerolog/log"
)

// ProfileHandler shows the authenticated user's account.
func (s *Server) ProfileHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<dl>
  <dt>Username</dt><dd>{{.Username}}</dd>
  <dt>Email</dt><dd>{{.Email}}</dd>
  <dt>Role</dt><dd>{{.Role}}</dd>
</dl>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := s.api.CurrentUser(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load profile")
			return
		}
		s.renderPage(w, "Profile", tmpl, profile)
	}
}

// MyBookingsHandler lists the user's room bookings with cancel buttons.
func (s *Server) MyBookingsHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<table>
  <tr><th>Room</th><th>Check-in</th><th>Check-out</th><th>Status</th><th>Confirmation</th><th></th></tr>
{{range .}}
  <tr>
    <td>{{.RoomName}}</td><td>{{.CheckInDate}}</td><td>{{.CheckOutDate}}</td>
    <td>{{.Status}}</td><td>{{.BookingConfirmationCode}}</td>
    <td><form method="post" action="/my-bookings"><input type="hidden" name="bookingId" value="{{.ID}}"><button type="submit">Cancel</button></form></td>
  </tr>
{{else}}
  <tr><td colspan="6">No bookings yet.</td></tr>
{{end}}
</table>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := s.api.MyRoomBookings(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load bookings")
			return
		}
		s.renderPage(w, "My Bookings", tmpl, bookings)
	}
}

// CancelBookingHandler cancels one of the user's bookings.
func (s *Server) CancelBookingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID := r.PostFormValue("bookingId")
		if bookingID == "" {
			http.Error(w, "missing booking id", http.StatusBadRequest)
			return
		}
		if err := s.api.CancelBooking(r.Context(), bookingID); err != nil {
			s.backendError(w, err, "failed to cancel booking")
			return
		}
		http.Redirect(w, r, RouteMyBookings, http.StatusSeeOther)
	}
}

// MyOrdersHandler lists the user's food orders.
func (s *Server) MyOrdersHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<table>
  <tr><th>Order</th><th>Status</th><th>Total</th><th>Placed</th></tr>
{{range .}}
  <tr><td>{{if .OrderID}}{{.OrderID}}{{else}}{{.ID}}{{end}}</td><td>{{.Status}}</td><td>{{printf "%.2f" .TotalAmount}}</td><td>{{.CreatedAt}}</td></tr>
{{else}}
  <tr><td colspan="4">No orders yet.</td></tr>
{{end}}
</table>
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := s.api.MyFoodOrders(r.Context())
		if err != nil {
			s.backendError(w, err, "failed to load orders")
			return
		}
		s.renderPage(w, "My Orders", tmpl, orders)
	}
}

// BookRoomHandler books a room for the submitted date range.
func (s *Server) BookRoomHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}

		checkIn, errIn := time.Parse("2006-01-02", r.PostFormValue("checkIn"))
		checkOut, errOut := time.Parse("2006-01-02", r.PostFormValue("checkOut"))
		if errIn != nil || errOut != nil {
			http.Error(w, "invalid dates", http.StatusBadRequest)
			return
		}
		nights := cart.Nights(checkIn, checkOut)
		if nights <= 0 {
			http.Error(w, "check-out must be after check-in", http.StatusBadRequest)
			return
		}

		var rate float64
		if price := r.PostFormValue("price"); price != "" {
			if parsed, err := parsePrice(price); err == nil {
				rate = parsed
			}
		}

		booking, err := s.api.BookRoom(r.Context(), rest.RoomBookingRequest{
			RoomID:       r.PostFormValue("roomId"),
			CheckInDate:  checkIn.Format("2006-01-02"),
			CheckOutDate: checkOut.Format("2006-01-02"),
			TotalPrice:   cart.StayTotal(rate, nights),
		})
		if err != nil {
			s.backendError(w, err, "failed to book room")
			return
		}

		zlog.Info().Str("booking", booking.ID).Int("nights", nights).Msg("room booked")
		http.Redirect(w, r, RouteMyBookings, http.StatusSeeOther)
	}
}
