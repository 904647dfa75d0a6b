package onboarding

import (
	"context"
	"sync"
	"time"
	"waitingwell-service/internal/app/contracts"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/constvars"
	"waitingwell-service/internal/pkg/dto/requests"
	"waitingwell-service/internal/pkg/dto/responses"
	"waitingwell-service/internal/pkg/exceptions"
	"waitingwell-service/internal/pkg/risk"
	"waitingwell-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type onboardingUsecase struct {
	OnboardingRepository contracts.OnboardingRepository
	EscalationService    contracts.EscalationService
	Log                  *zap.Logger
}

var (
	onboardingUsecaseInstance contracts.OnboardingUsecase
	onceOnboardingUsecase     sync.Once
)

func NewOnboardingUsecase(
	onboardingRepository contracts.OnboardingRepository,
	escalationService contracts.EscalationService,
	logger *zap.Logger,
) contracts.OnboardingUsecase {
	onceOnboardingUsecase.Do(func() {
		instance := &onboardingUsecase{
			OnboardingRepository: onboardingRepository,
			EscalationService:    escalationService,
			Log:                  logger,
		}
		onboardingUsecaseInstance = instance
	})
	return onboardingUsecaseInstance
}

// SubmitOnboarding stores the one-time intake. A second submission for the
// same user is rejected and never touches the existing record, so the
// baseline stays exactly what the user first reported.
func (uc *onboardingUsecase) SubmitOnboarding(ctx context.Context, request *requests.SubmitOnboarding) (*responses.Onboarding, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.OnboardingRepository.FindOnboardingResponseByUserID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrOnboardingAlreadyCompleted(nil)
	}

	responseMap := request.ResponseMap()
	score := risk.ComputeScore(responseMap)
	level := risk.Classify(score)

	record := &models.OnboardingResponse{
		ID:                   uuid.NewString(),
		UserID:               request.UserID,
		Responses:            responseMap,
		RiskScore:            score,
		BaselineAnxietyLevel: level,
		CompletedAt:          time.Now().UTC(),
	}

	_, err = uc.OnboardingRepository.CreateOnboardingResponse(ctx, record)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("onboardingUsecase.SubmitOnboarding stored intake",
		zap.String(constvars.LoggingUserIDKey, record.UserID),
		zap.Int(constvars.LoggingRiskScoreKey, record.RiskScore),
		zap.String(constvars.LoggingRiskLevelKey, string(record.BaselineAnxietyLevel)),
	)

	if risk.RequiresEscalation(level) {
		uc.publishEscalation(ctx, record)
	}

	return mapOnboardingToResponse(record), nil
}

func (uc *onboardingUsecase) FindOnboardingByUserID(ctx context.Context, request *requests.FindOnboarding) (*responses.Onboarding, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	record, err := uc.OnboardingRepository.FindOnboardingResponseByUserID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrOnboardingNotFound(nil)
	}

	return mapOnboardingToResponse(record), nil
}

func (uc *onboardingUsecase) publishEscalation(ctx context.Context, record *models.OnboardingResponse) {
	alert := &requests.EscalationAlert{
		UserID:      record.UserID,
		Source:      requests.EscalationSourceOnboarding,
		RecordID:    record.ID,
		RiskScore:   record.RiskScore,
		RiskLevel:   record.BaselineAnxietyLevel,
		CompletedAt: record.CompletedAt,
	}
	if err := uc.EscalationService.PublishAlert(ctx, alert); err != nil {
		uc.Log.Error("onboardingUsecase.publishEscalation failed to publish crisis alert",
			zap.String(constvars.LoggingUserIDKey, record.UserID),
			zap.Error(err),
		)
	}
}

func mapOnboardingToResponse(record *models.OnboardingResponse) *responses.Onboarding {
	return &responses.Onboarding{
		ID:                   record.ID,
		UserID:               record.UserID,
		Responses:            record.Responses,
		RiskScore:            record.RiskScore,
		BaselineAnxietyLevel: record.BaselineAnxietyLevel,
		NeedsEscalation:      risk.RequiresEscalation(record.BaselineAnxietyLevel),
		CompletedAt:          record.CompletedAt,
	}
}
