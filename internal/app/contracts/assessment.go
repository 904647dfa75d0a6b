package contracts

import (
	"context"
	"time"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/dto/requests"
	"waitingwell-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	SubmitWeeklyAssessment(ctx context.Context, request *requests.SubmitWeeklyAssessment) (*responses.WeeklyAssessment, error)
	FindAssessmentHistory(ctx context.Context, request *requests.FindAssessmentHistory) ([]responses.WeeklyAssessment, error)
	FindEligibility(ctx context.Context, request *requests.FindEligibility) (*responses.Eligibility, error)
}

type AssessmentRepository interface {
	CreateWeeklyAssessment(ctx context.Context, assessment *models.WeeklyAssessment) (string, error)
	FindWeeklyAssessmentsByUserID(ctx context.Context, userID string) ([]models.WeeklyAssessment, error)
	CountWeeklyAssessmentsByUserID(ctx context.Context, userID string) (int, error)
	// FindLatestCompletedAtByUserID returns nil when the user has no prior
	// weekly assessments.
	FindLatestCompletedAtByUserID(ctx context.Context, userID string) (*time.Time, error)
}
