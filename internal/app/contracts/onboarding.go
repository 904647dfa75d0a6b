package contracts

import (
	"context"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/dto/requests"
	"waitingwell-service/internal/pkg/dto/responses"
)

type OnboardingUsecase interface {
	SubmitOnboarding(ctx context.Context, request *requests.SubmitOnboarding) (*responses.Onboarding, error)
	FindOnboardingByUserID(ctx context.Context, request *requests.FindOnboarding) (*responses.Onboarding, error)
}

type OnboardingRepository interface {
	CreateOnboardingResponse(ctx context.Context, onboarding *models.OnboardingResponse) (string, error)
	// FindOnboardingResponseByUserID returns nil when the user has not
	// completed the intake yet.
	FindOnboardingResponseByUserID(ctx context.Context, userID string) (*models.OnboardingResponse, error)
}
