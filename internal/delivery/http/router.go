package http

import (
	"net/http"

	"lifelink-api/internal/delivery/http/handler"
	"lifelink-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	donorHandler        *handler.DonorHandler
	alertHandler        *handler.AlertHandler
	notificationHandler *handler.NotificationHandler
	bloodCampHandler    *handler.BloodCampHandler
	medicalCampHandler  *handler.MedicalCampHandler
	eventHandler        *handler.EventHandler
	teamMemberHandler   *handler.TeamMemberHandler
	dashboardHandler    *handler.DashboardHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	donorHandler *handler.DonorHandler,
	alertHandler *handler.AlertHandler,
	notificationHandler *handler.NotificationHandler,
	bloodCampHandler *handler.BloodCampHandler,
	medicalCampHandler *handler.MedicalCampHandler,
	eventHandler *handler.EventHandler,
	teamMemberHandler *handler.TeamMemberHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		donorHandler:        donorHandler,
		alertHandler:        alertHandler,
		notificationHandler: notificationHandler,
		bloodCampHandler:    bloodCampHandler,
		medicalCampHandler:  medicalCampHandler,
		eventHandler:        eventHandler,
		teamMemberHandler:   teamMemberHandler,
		dashboardHandler:    dashboardHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
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
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Public content routes (team page, camps and events listings)
	public := api.PathPrefix("").Subrouter()
	public.HandleFunc("/team", r.teamMemberHandler.List).Methods(http.MethodGet)
	public.HandleFunc("/blood-camps", r.bloodCampHandler.List).Methods(http.MethodGet)
	public.HandleFunc("/blood-camps/{id}", r.bloodCampHandler.Get).Methods(http.MethodGet)
	public.HandleFunc("/medical-camps", r.medicalCampHandler.List).Methods(http.MethodGet)
	public.HandleFunc("/medical-camps/{id}", r.medicalCampHandler.Get).Methods(http.MethodGet)
	public.HandleFunc("/events", r.eventHandler.List).Methods(http.MethodGet)
	public.HandleFunc("/events/upcoming", r.eventHandler.ListUpcoming).Methods(http.MethodGet)
	public.HandleFunc("/events/{id}", r.eventHandler.Get).Methods(http.MethodGet)

	// Donor-facing routes (authenticated)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/alerts/active", r.alertHandler.ListActive).Methods(http.MethodGet)
	protected.HandleFunc("/alerts/past", r.alertHandler.ListPast).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/tokens", r.notificationHandler.RegisterToken).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/tokens", r.notificationHandler.UnregisterToken).Methods(http.MethodDelete)

	donor := api.PathPrefix("").Subrouter()
	donor.Use(r.authMiddleware.Authenticate)
	donor.Use(middleware.RequireDonor)
	donor.HandleFunc("/donors/me", r.donorHandler.MyProfile).Methods(http.MethodGet)
	donor.HandleFunc("/donors/me/donation", r.donorHandler.RecordMyDonation).Methods(http.MethodPatch)
	donor.HandleFunc("/alerts/{id}/accept", r.alertHandler.Accept).Methods(http.MethodPost)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Donor management (admin)
	admin.HandleFunc("/donors", r.donorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/donors", r.donorHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/donors/refresh-eligibility", r.donorHandler.RefreshEligibility).Methods(http.MethodPost)
	admin.HandleFunc("/donors/{id}", r.donorHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/donors/{id}", r.donorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/donors/{id}", r.donorHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/donors/{id}/donation", r.donorHandler.RecordDonation).Methods(http.MethodPatch)

	// Alert management (admin)
	admin.HandleFunc("/alerts", r.alertHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/alerts", r.alertHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/alerts/{id}", r.alertHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/alerts/{id}", r.alertHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/alerts/{id}/donors", r.alertHandler.AcceptedDonors).Methods(http.MethodGet)
	admin.HandleFunc("/alerts/{id}/resolve", r.alertHandler.Resolve).Methods(http.MethodPatch)
	admin.HandleFunc("/alerts/{id}/cancel", r.alertHandler.Cancel).Methods(http.MethodPatch)

	// Camp and event management (admin)
	admin.HandleFunc("/blood-camps", r.bloodCampHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/blood-camps/{id}", r.bloodCampHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/blood-camps/{id}", r.bloodCampHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/medical-camps", r.medicalCampHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/medical-camps/{id}", r.medicalCampHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/medical-camps/{id}", r.medicalCampHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/events", r.eventHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/events/{id}", r.eventHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/events/{id}", r.eventHandler.Delete).Methods(http.MethodDelete)

	// Team management (admin)
	admin.HandleFunc("/team", r.teamMemberHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/team/{id}", r.teamMemberHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/team/{id}", r.teamMemberHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/team/{id}", r.teamMemberHandler.Delete).Methods(http.MethodDelete)

	// Notifications and dashboard (admin)
	admin.HandleFunc("/notifications/broadcast", r.notificationHandler.Broadcast).Methods(http.MethodPost)
	admin.HandleFunc("/dashboard/overview", r.dashboardHandler.Overview).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
