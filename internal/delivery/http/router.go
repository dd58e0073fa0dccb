package http

import (
	"net/http"

	"pawpal-server/internal/delivery/http/handler"
	"pawpal-server/internal/delivery/http/middleware"
	"pawpal-server/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	petHandler       *handler.PetHandler
	bookingHandler   *handler.BookingHandler
	careHandler      *handler.CareHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	petHandler *handler.PetHandler,
	bookingHandler *handler.BookingHandler,
	careHandler *handler.CareHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		petHandler:       petHandler,
		bookingHandler:   bookingHandler,
		careHandler:      careHandler,
		dashboardHandler: dashboardHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/profile", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	// Booking routes, one set per ledger. Availability stays public so
	// prospective customers can browse slots before registering.
	r.setupLedger(api, "/groomings", entity.Grooming)
	r.setupLedger(api, "/doctor-visits", entity.Doctor)

	// Pet and care routes (protected)
	pets := api.PathPrefix("/pets").Subrouter()
	pets.Use(r.authMiddleware.Authenticate)
	pets.HandleFunc("", r.petHandler.Create).Methods(http.MethodPost)
	pets.HandleFunc("", r.petHandler.List).Methods(http.MethodGet)
	pets.HandleFunc("/{id:[0-9]+}", r.petHandler.Get).Methods(http.MethodGet)
	pets.HandleFunc("/{petId:[0-9]+}/health-records", r.careHandler.CreateHealthRecord).Methods(http.MethodPost)
	pets.HandleFunc("/{petId:[0-9]+}/health-records", r.careHandler.ListHealthRecords).Methods(http.MethodGet)
	pets.HandleFunc("/{petId:[0-9]+}/vaccinations", r.careHandler.CreateVaccination).Methods(http.MethodPost)
	pets.HandleFunc("/{petId:[0-9]+}/vaccinations", r.careHandler.ListVaccinations).Methods(http.MethodGet)
	pets.HandleFunc("/{petId:[0-9]+}/diet-plans", r.careHandler.CreateDietPlan).Methods(http.MethodPost)
	pets.HandleFunc("/{petId:[0-9]+}/diet-plans", r.careHandler.ListDietPlans).Methods(http.MethodGet)

	// Dashboard (protected)
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(r.authMiddleware.Authenticate)
	dashboard.HandleFunc("", r.dashboardHandler.Get).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) setupLedger(api *mux.Router, prefix string, ledger entity.Ledger) {
	public := api.PathPrefix(prefix).Subrouter()
	public.HandleFunc("/availability", r.bookingHandler.Availability(ledger)).Methods(http.MethodGet)

	protected := api.PathPrefix(prefix).Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("", r.bookingHandler.Create(ledger)).Methods(http.MethodPost)
	protected.HandleFunc("", r.bookingHandler.List(ledger)).Methods(http.MethodGet)
	protected.HandleFunc("/{id:[0-9]+}", r.bookingHandler.Get(ledger)).Methods(http.MethodGet)
	protected.HandleFunc("/{id:[0-9]+}/cancel", r.bookingHandler.Cancel(ledger)).Methods(http.MethodPatch)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
