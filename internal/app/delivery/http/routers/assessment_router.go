package routers

import (
	"waitingwell-service/internal/app/delivery/http/middlewares"
	"waitingwell-service/internal/app/services/core/assessments"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *assessments.AssessmentController) {
	router.Post("/", assessmentController.SubmitWeeklyAssessment)
	router.Get("/", assessmentController.FindAssessmentHistory)
	router.Get("/eligibility", assessmentController.FindEligibility)
}
