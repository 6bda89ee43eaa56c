package server

import (
	"net/http"
	"strconv"

	"github.com/broqhotels/broq-go/cart"
	"github.com/broqhotels/broq-go/rest"
)

// CartHandler shows the cart with its running total.
func (s *Server) CartHandler() http.HandlerFunc {
	tmpl := parsePage(`{{define "content"}}
<table>
  <tr><th>Item</th><th>Price</th><th>Qty</th><th></th></tr>
{{range .Lines}}
  <tr>
    <td>{{.Name}}</td><td>{{printf "%.2f" .Price}}</td><td>{{.Quantity}}</td>
    <td><form method="post" action="/cart/remove"><input type="hidden" name="id" value="{{.ID}}"><button type="submit">Remove</button></form></td>
  </tr>
{{else}}
  <tr><td colspan="4">Your cart is empty.</td></tr>
{{end}}
</table>
<p>Total: {{printf "%.2f" .Total}}</p>
{{if .Lines}}
<form method="post" action="/cart/checkout"><button type="submit">Place order</button></form>
{{end}}
{{end}}`)

	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, "Cart", tmpl, map[string]any{
			"Lines": s.cart.Lines(),
			"Total": s.cart.Total(),
		})
	}
}

// CartAddHandler adds a menu item to the cart.
func (s *Server) CartAddHandler() http.HandlerFunc {
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
		quantity, _ := strconv.Atoi(r.PostFormValue("quantity"))

		s.cart.Add(cart.Line{
			ID:       r.PostFormValue("id"),
			Name:     r.PostFormValue("name"),
			Price:    price,
			Quantity: quantity,
		})
		http.Redirect(w, r, RouteCart, http.StatusSeeOther)
	}
}

// CartRemoveHandler removes a line from the cart.
func (s *Server) CartRemoveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.cart.Remove(r.PostFormValue("id"))
		http.Redirect(w, r, RouteCart, http.StatusSeeOther)
	}
}

// CartCheckoutHandler turns the cart into a food order and clears it.
func (s *Server) CartCheckoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines := s.cart.Lines()
		if len(lines) == 0 {
			http.Redirect(w, r, RouteCart, http.StatusSeeOther)
			return
		}

		items := make([]rest.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, rest.OrderItem{
				FoodID:    line.ID,
				FoodName:  line.Name,
				Quantity:  line.Quantity,
				UnitPrice: line.Price,
			})
		}

		if _, err := s.api.CreateFoodOrder(r.Context(), rest.FoodOrderRequest{Items: items}); err != nil {
			s.backendError(w, err, "failed to place order")
			return
		}

		s.cart.Clear()
		http.Redirect(w, r, RouteMyOrders, http.StatusSeeOther)
	}
}

func parsePrice(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}
