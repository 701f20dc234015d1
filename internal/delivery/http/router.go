package http

import (
	"net/http"

	"clinic-management-api/internal/delivery/http/handler"
	"clinic-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	visitHandler     *handler.VisitHandler
	diagnosisHandler *handler.DiagnosisHandler
	userHandler      *handler.UserHandler
	clinicHandler    *handler.ClinicHandler
	reportHandler    *handler.ReportHandler
	datasetHandler   *handler.DatasetHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	visitHandler *handler.VisitHandler,
	diagnosisHandler *handler.DiagnosisHandler,
	userHandler *handler.UserHandler,
	clinicHandler *handler.ClinicHandler,
	reportHandler *handler.ReportHandler,
	datasetHandler *handler.DatasetHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		visitHandler:     visitHandler,
		diagnosisHandler: diagnosisHandler,
		userHandler:      userHandler,
		clinicHandler:    clinicHandler,
		reportHandler:    reportHandler,
		datasetHandler:   datasetHandler,
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
	api.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Front desk: patient and visit registries (reception or manager)
	desk := api.PathPrefix("").Subrouter()
	desk.Use(r.authMiddleware.Authenticate)
	desk.Use(middleware.RequireReceptionOrManager)
	desk.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	desk.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	desk.HandleFunc("/visits", r.visitHandler.CreateVisit).Methods(http.MethodPost)
	desk.HandleFunc("/visits", r.visitHandler.ListVisits).Methods(http.MethodGet)

	// Reception dashboard
	reception := api.PathPrefix("/reception").Subrouter()
	reception.Use(r.authMiddleware.Authenticate)
	reception.Use(middleware.RequireReception)
	reception.HandleFunc("/dashboard", r.reportHandler.ReceptionDashboard).Methods(http.MethodGet)

	// Doctor routes: daily queue and diagnosis entry
	doctor := api.PathPrefix("").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/doctor/queue", r.reportHandler.DoctorQueue).Methods(http.MethodGet)
	doctor.HandleFunc("/doctor/dashboard", r.reportHandler.DoctorDashboard).Methods(http.MethodGet)
	doctor.HandleFunc("/visits/{id:[0-9]+}/open", r.visitHandler.OpenVisit).Methods(http.MethodPost)
	doctor.HandleFunc("/diagnoses", r.diagnosisHandler.CreateDiagnosis).Methods(http.MethodPost)
	doctor.HandleFunc("/diagnoses", r.diagnosisHandler.ListDiagnoses).Methods(http.MethodGet)

	// Manager routes: user admin, clinics, reports, dataset refresh
	manager := api.PathPrefix("").Subrouter()
	manager.Use(r.authMiddleware.Authenticate)
	manager.Use(middleware.RequireManager)
	manager.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	manager.HandleFunc("/users", r.userHandler.ListUsers).Methods(http.MethodGet)
	manager.HandleFunc("/users/{id:[0-9]+}/password", r.userHandler.UpdatePassword).Methods(http.MethodPut)
	manager.HandleFunc("/clinics", r.clinicHandler.ListClinics).Methods(http.MethodGet)
	manager.HandleFunc("/reports/revenue", r.reportHandler.RevenueReport).Methods(http.MethodGet)
	manager.HandleFunc("/manager/dashboard", r.reportHandler.ManagerDashboard).Methods(http.MethodGet)
	manager.HandleFunc("/admin/refresh", r.datasetHandler.Refresh).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
