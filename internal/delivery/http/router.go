package http

import (
	"net/http"

	"petclinic-api/internal/delivery/http/handler"
	"petclinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	petHandler           *handler.PetHandler
	catalogHandler       *handler.CatalogHandler
	appointmentHandler   *handler.AppointmentHandler
	assignmentHandler    *handler.AssignmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	paymentHandler       *handler.PaymentHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	petHandler *handler.PetHandler,
	catalogHandler *handler.CatalogHandler,
	appointmentHandler *handler.AppointmentHandler,
	assignmentHandler *handler.AssignmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	paymentHandler *handler.PaymentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		petHandler:           petHandler,
		catalogHandler:       catalogHandler,
		appointmentHandler:   appointmentHandler,
		assignmentHandler:    assignmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		paymentHandler:       paymentHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public catalog
	api.HandleFunc("/catalog", r.catalogHandler.GetCatalog).Methods(http.MethodGet)

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

	// Customer routes (protected - customer only)
	customer := api.NewRoute().Subrouter()
	customer.Use(r.authMiddleware.Authenticate)
	customer.Use(middleware.RequireCustomer)

	customer.HandleFunc("/pets", r.petHandler.Create).Methods(http.MethodPost)
	customer.HandleFunc("/pets", r.petHandler.GetMine).Methods(http.MethodGet)
	customer.HandleFunc("/pets/{id}", r.petHandler.Update).Methods(http.MethodPut)
	customer.HandleFunc("/pets/{id}", r.petHandler.Delete).Methods(http.MethodDelete)
	customer.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	customer.HandleFunc("/appointments", r.appointmentHandler.GetMine).Methods(http.MethodGet)

	// Routes shared by customers and clinic roles
	authenticated := api.NewRoute().Subrouter()
	authenticated.Use(r.authMiddleware.Authenticate)
	authenticated.HandleFunc("/pets/{id}", r.petHandler.Get).Methods(http.MethodGet)
	authenticated.HandleFunc("/pets/{id}/records", r.medicalRecordHandler.GetByPet).Methods(http.MethodGet)
	authenticated.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	authenticated.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)

	// Staff routes (protected - admin or staff)
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/pets", r.petHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}/assign", r.assignmentHandler.AssignDoctor).Methods(http.MethodPost)
	staff.HandleFunc("/doctors", r.assignmentHandler.ListDoctors).Methods(http.MethodGet)
	staff.HandleFunc("/payments", r.paymentHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/payments/{id}", r.paymentHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/payments/{id}/settle", r.paymentHandler.Settle).Methods(http.MethodPost)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	doctor.HandleFunc("/appointments", r.appointmentHandler.GetWorklist).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPost)
	doctor.HandleFunc("/records", r.medicalRecordHandler.GetMine).Methods(http.MethodGet)
	doctor.HandleFunc("/records/{id}", r.medicalRecordHandler.Update).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/employees", r.authHandler.CreateEmployee).Methods(http.MethodPost)
	admin.HandleFunc("/services", r.catalogHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services", r.catalogHandler.GetAllServices).Methods(http.MethodGet)
	admin.HandleFunc("/services/{id}", r.catalogHandler.GetService).Methods(http.MethodGet)
	admin.HandleFunc("/services/{id}", r.catalogHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.catalogHandler.DeleteService).Methods(http.MethodDelete)
	admin.HandleFunc("/service-options", r.catalogHandler.CreateServiceOption).Methods(http.MethodPost)
	admin.HandleFunc("/service-options/{id}", r.catalogHandler.UpdateServiceOption).Methods(http.MethodPut)
	admin.HandleFunc("/service-options/{id}", r.catalogHandler.DeleteServiceOption).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAll).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
