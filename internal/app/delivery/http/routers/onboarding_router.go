package routers

import (
	"fmt"
	"waitingwell-service/internal/app/delivery/http/middlewares"
	"waitingwell-service/internal/app/services/core/onboarding"
	"waitingwell-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachOnboardingRoutes(router chi.Router, middlewares *middlewares.Middlewares, onboardingController *onboarding.OnboardingController) {
	router.Post("/", onboardingController.SubmitOnboarding)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamUserID), onboardingController.FindOnboardingByUserID)
}
