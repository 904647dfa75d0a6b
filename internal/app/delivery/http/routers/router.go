package routers

import (
	"fmt"
	"time"
	"waitingwell-service/internal/app/config"
	"waitingwell-service/internal/app/delivery/http/middlewares"
	"waitingwell-service/internal/app/services/core/assessments"
	"waitingwell-service/internal/app/services/core/journals"
	"waitingwell-service/internal/app/services/core/onboarding"
	"waitingwell-service/internal/app/services/core/resources"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	assessmentController *assessments.AssessmentController,
	onboardingController *onboarding.OnboardingController,
	journalController *journals.JournalController,
	resourceController *resources.ResourceController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/assessments", func(r chi.Router) {
				attachAssessmentRoutes(r, middlewares, assessmentController)
			})

			r.Route("/onboarding", func(r chi.Router) {
				attachOnboardingRoutes(r, middlewares, onboardingController)
			})

			r.Route("/journals", func(r chi.Router) {
				attachJournalRoutes(r, middlewares, journalController)
			})

			r.Route("/resources", func(r chi.Router) {
				attachResourceRoutes(r, middlewares, resourceController)
			})
		})
	})
}
