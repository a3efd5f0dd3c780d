package http

import (
	"library-backend/internal/security"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the HTTP layer serves.
type Services struct {
	Auth          service.AuthService
	Users         service.UserService
	Books         service.BookService
	Circulation   service.CirculationService
	Notifications service.NotificationService
	Dashboard     service.DashboardService
}

// NewRouter wires all routes. Registration, login, and the read-only catalog
// are public; everything else sits behind bearer-token auth.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)

	RegisterAuthRoutes(router, svcs.Auth, tokens)
	RegisterPublicBookRoutes(router, svcs.Books)

	protected := router.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))
	RegisterUserRoutes(protected, svcs.Users)
	RegisterBookRoutes(protected, svcs.Books)
	RegisterCirculationRoutes(protected, svcs.Circulation)
	RegisterNotificationRoutes(protected, svcs.Notifications)
	RegisterDashboardRoutes(protected, svcs.Dashboard)

	return router
}
