package http

import (
	"net/http"

	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	hospitalHandler    *handler.HospitalHandler
	departmentHandler  *handler.DepartmentHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	reportHandler      *handler.ReportHandler
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	hospitalHandler *handler.HospitalHandler,
	departmentHandler *handler.DepartmentHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	reportHandler *handler.ReportHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		hospitalHandler:    hospitalHandler,
		departmentHandler:  departmentHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		reportHandler:      reportHandler,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Hospital directory
	api.HandleFunc("/hospitals", r.hospitalHandler.CreateHospital).Methods(http.MethodPost)
	api.HandleFunc("/hospitals", r.hospitalHandler.ListHospitals).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}", r.hospitalHandler.GetHospital).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}", r.hospitalHandler.DeleteHospital).Methods(http.MethodDelete)
	api.HandleFunc("/hospitals/{id}/departments", r.hospitalHandler.CreateDepartment).Methods(http.MethodPost)
	api.HandleFunc("/hospitals/{id}/departments/{departmentId}", r.hospitalHandler.AttachDepartment).Methods(http.MethodPut)
	api.HandleFunc("/hospitals/{id}/patients", r.hospitalHandler.RegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/hospitals/{id}/patients/{patientId}", r.hospitalHandler.AdmitPatient).Methods(http.MethodPut)

	// Departments, physicians and rooms
	api.HandleFunc("/departments/{id}", r.departmentHandler.GetDepartment).Methods(http.MethodGet)
	api.HandleFunc("/departments/{id}/physicians", r.departmentHandler.RegisterPhysician).Methods(http.MethodPost)
	api.HandleFunc("/departments/{id}/physicians/{physicianId}", r.departmentHandler.AssignPhysician).Methods(http.MethodPut)
	api.HandleFunc("/departments/{id}/rooms", r.departmentHandler.CreateRoom).Methods(http.MethodPost)
	api.HandleFunc("/physicians/{id}", r.departmentHandler.GetPhysician).Methods(http.MethodGet)
	api.HandleFunc("/physicians/{id}/appointments", r.appointmentHandler.ListByPhysician).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", r.departmentHandler.GetRoom).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}/appointments", r.appointmentHandler.ListByRoom).Methods(http.MethodGet)

	// Patients and clinical records
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/appointments", r.appointmentHandler.ListByPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/record", r.patientHandler.GetRecord).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/record/diagnoses", r.patientHandler.AddDiagnosis).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}/record/treatments", r.patientHandler.AddTreatment).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}/record/allergies", r.patientHandler.AddAllergy).Methods(http.MethodPost)

	// Scheduling
	api.HandleFunc("/appointments", r.appointmentHandler.ScheduleAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}/no-show", r.appointmentHandler.MarkNoShow).Methods(http.MethodPut)

	// Reporting
	api.HandleFunc("/reports/stats", r.reportHandler.GetStats).Methods(http.MethodGet)
	api.HandleFunc("/reports/physicians/{specialty}", r.reportHandler.GetPhysiciansBySpecialty).Methods(http.MethodGet)
	api.HandleFunc("/reports/appointments", r.reportHandler.GetAppointmentsByTime).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
