package server

func (s *Server) initRoutes() {
	pages := s.PageMiddleware()

	// Public storefront
	s.RegisterRouteFunc("GET "+RouteHome, ChainMiddleware(s.IndexHandler(), pages...))
	s.RegisterRouteFunc("GET "+RouteFoods, ChainMiddleware(s.FoodsHandler(), pages...))
	s.RegisterRouteFunc("GET "+RouteRooms, ChainMiddleware(s.RoomsHandler(), pages...))
	s.RegisterRouteFunc("GET "+RouteActivities, ChainMiddleware(s.ActivitiesHandler(), pages...))
	s.RegisterRouteFunc("GET "+RouteUnauthorized, ChainMiddleware(s.UnauthorizedHandler(), pages...))

	// Auth
	s.RegisterRouteFunc("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), pages...))
	s.RegisterRouteFunc("POST "+RouteLogin, ChainMiddleware(s.LoginSubmitHandler(), pages...))
	s.RegisterRouteFunc("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), pages...))
	s.RegisterRouteFunc("GET "+RouteRegister, ChainMiddleware(s.RegisterPageHandler(), pages...))
	s.RegisterRouteFunc("POST "+RouteRegister, ChainMiddleware(s.RegisterSubmitHandler(), pages...))

	// Cart (public: ordering requires auth only at checkout)
	s.RegisterRouteFunc("GET "+RouteCart, ChainMiddleware(s.CartHandler(), pages...))
	s.RegisterRouteFunc("POST "+RouteCartAdd, ChainMiddleware(s.CartAddHandler(), pages...))
	s.RegisterRouteFunc("POST "+RouteCartRemove, ChainMiddleware(s.CartRemoveHandler(), pages...))
	s.RegisterRouteFunc("POST "+RouteCartCheckout, ChainMiddleware(s.CartCheckoutHandler(), s.PageMiddleware(s.RequireAuth())...))

	// Account (auth required)
	authed := s.PageMiddleware(s.RequireAuth())
	s.RegisterRouteFunc("GET "+RouteProfile, ChainMiddleware(s.ProfileHandler(), authed...))
	s.RegisterRouteFunc("GET "+RouteMyBookings, ChainMiddleware(s.MyBookingsHandler(), authed...))
	s.RegisterRouteFunc("POST "+RouteMyBookings, ChainMiddleware(s.CancelBookingHandler(), authed...))
	s.RegisterRouteFunc("GET "+RouteMyOrders, ChainMiddleware(s.MyOrdersHandler(), authed...))
	s.RegisterRouteFunc("POST "+RouteBookRoom, ChainMiddleware(s.BookRoomHandler(), authed...))

	// Admin (ADMIN role required)
	admin := s.PageMiddleware(s.RequireAdmin())
	s.RegisterRouteFunc("GET "+RouteAdminDashboard, ChainMiddleware(s.AdminDashboardHandler(), admin...))
	s.RegisterRouteFunc("GET "+RouteAdminFoods, ChainMiddleware(s.AdminFoodsHandler(), admin...))
	s.RegisterRouteFunc("POST "+RouteAdminFoods, ChainMiddleware(s.AdminFoodCreateHandler(), admin...))
	s.RegisterRouteFunc("POST "+RouteAdminFoodsDelete, ChainMiddleware(s.AdminFoodDeleteHandler(), admin...))
	s.RegisterRouteFunc("GET "+RouteAdminRooms, ChainMiddleware(s.AdminRoomsHandler(), admin...))
	s.RegisterRouteFunc("POST "+RouteAdminRooms, ChainMiddleware(s.AdminRoomCreateHandler(), admin...))
	s.RegisterRouteFunc("POST "+RouteAdminRoomsDelete, ChainMiddleware(s.AdminRoomDeleteHandler(), admin...))
	s.RegisterRouteFunc("GET "+RouteAdminActivities, ChainMiddleware(s.AdminActivitiesHandler(), admin...))
	s.RegisterRouteFunc("POST "+RouteAdminActivities, ChainMiddleware(s.AdminActivityCreateHandler(), admin...))
	s.RegisterRouteFunc("POST "+RouteAdminActivitiesDelete, ChainMiddleware(s.AdminActivityDeleteHandler(), admin...))
	s.RegisterRouteFunc("GET "+RouteAdminBookings, ChainMiddleware(s.AdminBookingsHandler(), admin...))
	s.RegisterRouteFunc("GET "+RouteAdminUsers, ChainMiddleware(s.AdminUsersHandler(), admin...))
}
