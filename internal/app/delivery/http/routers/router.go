package routers

import (
	"net/http"
	"strings"

	"healthcamp-service/internal/app/config"
	"healthcamp-service/internal/app/delivery/http/controllers"
	"healthcamp-service/internal/app/delivery/http/middlewares"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLog *logrus.Logger,
	middlewares *middlewares.Middlewares,
	patientController *controllers.PatientController,
	analyticsController *controllers.AnalyticsController,
	labController *controllers.LabController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodHead, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders: []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		MaxAge:         300,
	}

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(metrics.Middleware)
	router.Use(middlewares.Logging)
	if accessLog != nil {
		router.Use(middlewares.RequestLogger(internalConfig.App, accessLog))
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.SecurityHeaders)
	router.Use(middlewares.RateLimit())

	router.Get("/ping", controllers.Ping)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.Route(endpointPrefix(internalConfig.App.EndpointPrefix), func(r chi.Router) {
		attachAnalyticsRoutes(r, analyticsController)
		attachPatientRoutes(r, patientController)
		attachLabRoutes(r, labController)
	})
}

// endpointPrefix normalizes the configured prefix to a single leading slash.
func endpointPrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	return "/" + prefix
}

func attachAnalyticsRoutes(router chi.Router, analyticsController *controllers.AnalyticsController) {
	router.Get("/demographics", analyticsController.GetDemographics)
	router.Get("/location", analyticsController.GetLocationStats)
	router.Get("/sha", analyticsController.GetCoverageStats)
	router.Get("/locations", analyticsController.GetLocations)
	router.Get("/analyze", analyticsController.GetAnalytics)
	router.Get("/general-health", analyticsController.GetGeneralHealth)
}

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/filtered", patientController.FindFiltered)
	router.Get("/first-hundred", patientController.FindFirstHundred)
	router.Get("/hourly", patientController.GetHourlyRegistrations)
	router.Get("/search-diagnosis", patientController.SearchByDiagnosis)
	router.Get("/location-patients", patientController.FindByLocation)
	router.Route("/patients", func(r chi.Router) {
		r.Get("/", patientController.FindAll)
		r.Get("/{id}", patientController.FindByID)
	})
}

func attachLabRoutes(router chi.Router, labController *controllers.LabController) {
	router.Route("/lab-data", func(r chi.Router) {
		r.Get("/", labController.GetLabData)
		r.Post("/exports", labController.CreateLabExport)
	})
	router.Get("/lab-statistics", labController.GetLabStatistics)
}
