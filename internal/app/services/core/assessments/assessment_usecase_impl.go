package assessments

import (
	"context"
	"fmt"
	"sync"
	"time"
	"waitingwell-service/internal/app/config"
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

type assessmentUsecase struct {
	AssessmentRepository contracts.AssessmentRepository
	LockerService        contracts.LockerService
	EscalationService    contracts.EscalationService
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	assessmentRepository contracts.AssessmentRepository,
	lockerService contracts.LockerService,
	escalationService contracts.EscalationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		instance := &assessmentUsecase{
			AssessmentRepository: assessmentRepository,
			LockerService:        lockerService,
			EscalationService:    escalationService,
			InternalConfig:       internalConfig,
			Log:                  logger,
		}
		assessmentUsecaseInstance = instance
	})
	return assessmentUsecaseInstance
}

// SubmitWeeklyAssessment enforces the seven-day gate server side. The
// eligibility check and week number assignment run under a per-user redis
// lock so two near-simultaneous submissions cannot both pass the gate.
func (uc *assessmentUsecase) SubmitWeeklyAssessment(ctx context.Context, request *requests.SubmitWeeklyAssessment) (*responses.WeeklyAssessment, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeySubmissionLockFormat, request.UserID)
	lockTTL := time.Duration(uc.InternalConfig.Assessment.SubmissionLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSubmissionInProgress(nil)
	}
	defer uc.LockerService.Unlock(ctx, lockKey, lockValue)

	lastCompletedAt, err := uc.AssessmentRepository.FindLatestCompletedAtByUserID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	eligibility := risk.NextEligibility(lastCompletedAt, now)
	if !eligibility.Eligible {
		return nil, exceptions.ErrWeeklyAssessmentNotDue(nil)
	}

	priorCount, err := uc.AssessmentRepository.CountWeeklyAssessmentsByUserID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}

	responseMap := request.ResponseMap()
	score := risk.ComputeScore(responseMap)
	level := risk.Classify(score)

	assessment := &models.WeeklyAssessment{
		ID:              uuid.NewString(),
		UserID:          request.UserID,
		WeekNumber:      priorCount + 1,
		Responses:       responseMap,
		RiskScore:       score,
		RiskLevel:       level,
		NeedsEscalation: risk.RequiresEscalation(level),
		CompletedAt:     now,
	}

	_, err = uc.AssessmentRepository.CreateWeeklyAssessment(ctx, assessment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.SubmitWeeklyAssessment stored check-in",
		zap.String(constvars.LoggingUserIDKey, assessment.UserID),
		zap.Int(constvars.LoggingWeekNumberKey, assessment.WeekNumber),
		zap.Int(constvars.LoggingRiskScoreKey, assessment.RiskScore),
		zap.String(constvars.LoggingRiskLevelKey, string(assessment.RiskLevel)),
	)

	if assessment.NeedsEscalation {
		uc.publishEscalation(ctx, assessment)
	}

	return mapAssessmentToResponse(assessment), nil
}

func (uc *assessmentUsecase) FindAssessmentHistory(ctx context.Context, request *requests.FindAssessmentHistory) ([]responses.WeeklyAssessment, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	assessments, err := uc.AssessmentRepository.FindWeeklyAssessmentsByUserID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}

	history := make([]responses.WeeklyAssessment, 0, len(assessments))
	for i := range assessments {
		history = append(history, *mapAssessmentToResponse(&assessments[i]))
	}
	return history, nil
}

func (uc *assessmentUsecase) FindEligibility(ctx context.Context, request *requests.FindEligibility) (*responses.Eligibility, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	lastCompletedAt, err := uc.AssessmentRepository.FindLatestCompletedAtByUserID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}

	eligibility := risk.NextEligibility(lastCompletedAt, time.Now().UTC())
	response := &responses.Eligibility{
		Eligible:      eligibility.Eligible,
		DaysRemaining: eligibility.DaysRemaining,
	}
	if !eligibility.NextAvailableAt.IsZero() {
		nextAvailableAt := eligibility.NextAvailableAt
		response.NextAvailableAt = &nextAvailableAt
	}
	return response, nil
}

// publishEscalation alerts the crisis-support channel after the record is
// durably stored. A publish failure is logged, never surfaced: the
// submission already succeeded and must not look failed to the user.
func (uc *assessmentUsecase) publishEscalation(ctx context.Context, assessment *models.WeeklyAssessment) {
	alert := &requests.EscalationAlert{
		UserID:      assessment.UserID,
		Source:      requests.EscalationSourceWeekly,
		RecordID:    assessment.ID,
		RiskScore:   assessment.RiskScore,
		RiskLevel:   assessment.RiskLevel,
		CompletedAt: assessment.CompletedAt,
	}
	if err := uc.EscalationService.PublishAlert(ctx, alert); err != nil {
		uc.Log.Error("assessmentUsecase.publishEscalation failed to publish crisis alert",
			zap.String(constvars.LoggingUserIDKey, assessment.UserID),
			zap.Error(err),
		)
	}
}

func mapAssessmentToResponse(assessment *models.WeeklyAssessment) *responses.WeeklyAssessment {
	return &responses.WeeklyAssessment{
		ID:              assessment.ID,
		UserID:          assessment.UserID,
		WeekNumber:      assessment.WeekNumber,
		Responses:       assessment.Responses,
		RiskScore:       assessment.RiskScore,
		RiskLevel:       assessment.RiskLevel,
		NeedsEscalation: assessment.NeedsEscalation,
		CompletedAt:     assessment.CompletedAt,
	}
}
