package rest

// Backend route constants
// All backend paths are defined here to ensure consistency and prevent typos
const (
	// Auth
	RouteLogin    = "/api/auth/login"
	RouteRegister = "/api/auth/register"
	RouteRefresh  = "/api/auth/refresh"
	RouteLogout   = "/api/auth/logout"

	// Users
	RouteUserProfile = "/api/users/current-user"
	RouteUserAll     = "/api/admin/users/all"

	// Bookings
	RouteBookings       = "/api/bookings"
	RouteMyRoomBookings = "/api/bookings/my"
	RouteRoomBook       = "/api/rooms/book"

	// Food
	RouteFoods      = "/api/public/all/foods"
	RouteFoodOrders = "/api/food-orders"

	// Activities
	RouteActivities      = "/api/public/all/activities"
	RouteActivityBooking = "/api/activities/booking/create"

	// Rooms
	RouteRooms = "/api/public/all/rooms"

	// Blogs
	RouteBlogs = "/api/blogs"

	// Admin
	RouteAdminFoodCreate      = "/api/admin/food/create"
	RouteAdminFood            = "/api/admin/food"
	RouteAdminRooms           = "/api/admin/rooms"
	RouteAdminActivityCreate  = "/api/admin/activity/create"
	RouteAdminActivity        = "/api/admin/activity"
	RouteAdminBookings        = "/api/admin/bookings"
	RouteAdminUsers           = "/api/admin/users"
	RouteAdminBlogs           = "/api/admin/blogs"
)
