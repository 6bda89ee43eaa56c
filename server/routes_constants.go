package server

// Route path constants
// All storefront routes are defined here to ensure consistency and prevent typos
const (
	RouteHome       = "/"
	RouteFoods      = "/foods"
	RouteRooms      = "/rooms"
	RouteActivities = "/activities"

	// Auth
	RouteLogin        = "/login"
	RouteLogout       = "/logout"
	RouteRegister     = "/register"
	RouteUnauthorized = "/unauthorized"

	// Account (auth required)
	RouteProfile    = "/profile"
	RouteMyBookings = "/my-bookings"
	RouteMyOrders   = "/my-orders"
	RouteBookRoom   = "/rooms/book"

	// Cart
	RouteCart         = "/cart"
	RouteCartAdd      = "/cart/add"
	RouteCartRemove   = "/cart/remove"
	RouteCartCheckout = "/cart/checkout"

	// Admin (ADMIN role required)
	RouteAdminDashboard        = "/admin/dashboard"
	RouteAdminFoods            = "/admin/foods"
	RouteAdminFoodsDelete      = "/admin/foods/delete"
	RouteAdminRooms            = "/admin/rooms"
	RouteAdminRoomsDelete      = "/admin/rooms/delete"
	RouteAdminActivities       = "/admin/activities"
	RouteAdminActivitiesDelete = "/admin/activities/delete"
	RouteAdminBookings         = "/admin/bookings"
	RouteAdminUsers            = "/admin/users"
)
