package assessments

import (
	"context"
	"testing"
	"time"
	"waitingwell-service/internal/app/config"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/dto/requests"
	"waitingwell-service/internal/pkg/exceptions"
	"waitingwell-service/internal/pkg/risk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) CreateWeeklyAssessment(ctx context.Context, assessment *models.WeeklyAssessment) (string, error) {
	args := m.Called(ctx, assessment)
	return args.String(0), args.Error(1)
}

func (m *MockAssessmentRepository) FindWeeklyAssessmentsByUserID(ctx context.Context, userID string) ([]models.WeeklyAssessment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeeklyAssessment), args.Error(1)
}

func (m *MockAssessmentRepository) CountWeeklyAssessmentsByUserID(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAssessmentRepository) FindLatestCompletedAtByUserID(ctx context.Context, userID string) (*time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockEscalationService struct {
	mock.Mock
}

func (m *MockEscalationService) PublishAlert(ctx context.Context, alert *requests.EscalationAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func newTestAssessmentUsecase(
	repo *MockAssessmentRepository,
	locker *MockLockerService,
	escalation *MockEscalationService,
) *assessmentUsecase {
	internalConfig := &config.InternalConfig{
		Assessment: config.AppAssessment{
			SubmissionLockTTLInSeconds: 15,
		},
	}
	return &assessmentUsecase{
		AssessmentRepository: repo,
		LockerService:        locker,
		EscalationService:    escalation,
		InternalConfig:       internalConfig,
		Log:                  zap.NewNop(),
	}
}

func calmCheckIn() requests.WeeklyCheckInAnswers {
	return requests.WeeklyCheckInAnswers{
		AnxietyFrequency:    "0",
		WorryFrequency:      "1",
		DepressionFrequency: "0",
		AnhedoniaFrequency:  "0",
		SleepQuality:        "good",
		FunctioningLevel:    "full",
	}
}

func elevatedCheckIn() requests.WeeklyCheckInAnswers {
	return requests.WeeklyCheckInAnswers{
		AnxietyFrequency:    "3",
		WorryFrequency:      "3",
		DepressionFrequency: "2",
		AnhedoniaFrequency:  "2",
		SleepQuality:        "poor",
		FunctioningLevel:    "struggling",
	}
}

func TestAssessmentUsecase_SubmitWeeklyAssessment(t *testing.T) {
	ctx := context.Background()

	t.Run("First Submission Gets Week Number One", func(t *testing.T) {
		mockRepo := new(MockAssessmentRepository)
		mockLocker := new(MockLockerService)
		mockEscalation := new(MockEscalationService)
		uc := newTestAssessmentUsecase(mockRepo, mockLocker, mockEscalation)

		mockLocker.On("TryLock", mock.Anything, "assessment:submit-lock:user-1", 15*time.Second).Return(true, "lock-value", nil)
		mockLocker.On("Unlock", mock.Anything, "assessment:submit-lock:user-1", "lock-value").Return(nil)
		mockRepo.On("FindLatestCompletedAtByUserID", mock.Anything, "user-1").Return(nil, nil)
		mockRepo.On("CountWeeklyAssessmentsByUserID", mock.Anything, "user-1").Return(0, nil)
		mockRepo.On("CreateWeeklyAssessment", mock.Anything, mock.AnythingOfType("*models.WeeklyAssessment")).Return("assessment-id", nil)

		response, err := uc.SubmitWeeklyAssessment(ctx, &requests.SubmitWeeklyAssessment{
			UserID:    "user-1",
			Responses: calmCheckIn(),
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.WeekNumber)
		assert.Equal(t, 1, response.RiskScore)
		assert.Equal(t, risk.LevelLow, response.RiskLevel)
		assert.False(t, response.NeedsEscalation)
		mockEscalation.AssertNotCalled(t, "PublishAlert")
		mockRepo.AssertExpectations(t)
		mockLocker.AssertExpectations(t)
	})

	t.Run("Week Number Follows Stored History", func(t *testing.T) {
		mockRepo := new(MockAssessmentRepository)
		mockLocker := new(MockLockerService)
		mockEscalation := new(MockEscalationService)
		uc := newTestAssessmentUsecase(mockRepo, mockLocker, mockEscalation)

		lastCompletedAt := time.Now().UTC().Add(-8 * 24 * time.Hour)
		mockLocker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		mockLocker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("FindLatestCompletedAtByUserID", mock.Anything, "user-1").Return(&lastCompletedAt, nil)
		mockRepo.On("CountWeeklyAssessmentsByUserID", mock.Anything, "user-1").Return(2, nil)
		mockRepo.On("CreateWeeklyAssessment", mock.Anything, mock.MatchedBy(func(assessment *models.WeeklyAssessment) bool {
			return assessment.WeekNumber == 3
		})).Return("assessment-id", nil)

		response, err := uc.SubmitWeeklyAssessment(ctx, &requests.SubmitWeeklyAssessment{
			UserID: "user-1",
			// Client-sent week numbers are ignored.
			WeekNumber: 99,
			Responses:  calmCheckIn(),
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, response.WeekNumber)
		mockRepo.AssertExpectations(t)
	})

	t.Run("High Risk Publishes Escalation Alert", func(t *testing.T) {
		mockRepo := new(MockAssessmentRepository)
		mockLocker := new(MockLockerService)
		mockEscalation := new(MockEscalationService)
		uc := newTestAssessmentUsecase(mockRepo, mockLocker, mockEscalation)

		mockLocker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		mockLocker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("FindLatestCompletedAtByUserID", mock.Anything, "user-1").Return(nil, nil)
		mockRepo.On("CountWeeklyAssessmentsByUserID", mock.Anything, "user-1").Return(0, nil)
		mockRepo.On("CreateWeeklyAssessment", mock.Anything, mock.AnythingOfType("*models.WeeklyAssessment")).Return("assessment-id", nil)
		mockEscalation.On("PublishAlert", mock.Anything, mock.MatchedBy(func(alert *requests.EscalationAlert) bool {
			return alert.UserID == "user-1" && alert.Source == requests.EscalationSourceWeekly
		})).Return(nil)

		response, err := uc.SubmitWeeklyAssessment(ctx, &requests.SubmitWeeklyAssessment{
			UserID:    "user-1",
			Responses: elevatedCheckIn(),
		})

		assert.NoError(t, err)
		assert.Equal(t, 11, response.RiskScore)
		assert.Equal(t, risk.LevelHigh, response.RiskLevel)
		assert.True(t, response.NeedsEscalation)
		mockEscalation.AssertExpectations(t)
	})

	t.Run("Escalation Publish Failure Does Not Fail Submission", func(t *testing.T) {
		mockRepo := new(MockAssessmentRepository)
		mockLocker := new(MockLockerService)
		mockEscalation := new(MockEscalationService)
		uc := newTestAssessmentUsecase(mockRepo, mockLocker, mockEscalation)

		mockLocker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		mockLocker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("FindLatestCompletedAtByUserID", mock.Anything, "user-1").Return(nil, nil)
		mockRepo.On("CountWeeklyAssessmentsByUserID", mock.Anything, "user-1").Return(0, nil)
		mockRepo.On("CreateWeeklyAssessment", mock.Anything, mock.AnythingOfType("*models.WeeklyAssessment")).Return("assessment-id", nil)
		mockEscalation.On("PublishAlert", mock.Anything, mock.Anything).Return(assert.AnError)

		response, err := uc.SubmitWeeklyAssessment(ctx, &requests.SubmitWeeklyAssessment{
			UserID:    "user-1",
			Responses: elevatedCheckIn(),
		})

		assert.NoError(t, err)
		assert.True(t, response.NeedsEscalation)
	})

	t.Run("Rejected While Seven Day Gate Is Closed", func(t *testing.T) {
		mockRepo := new(MockAssessmentRepository)
		mockLocker := new(MockLockerService)
		mockEscalation := new(MockEscalationService)
		uc := newTestAssessmentUsecase(mockRepo, mockLocker, mockEscalation)

		lastCompletedAt := time.Now().UTC().Add(-3 * 24 * time.Hour)
		mockLocker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		mockLocker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("FindLatestCompletedAtByUserID", mock.Anything, "user-1").Return(&lastCompletedAt, nil)

		response, err := uc.SubmitWeeklyAssessment(ctx, &requests.SubmitWeeklyAssessment{
			UserID:    "user-1",
			Responses: calmCheckIn(),
		})

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "CreateWeeklyAssessment")
		mockRepo.AssertNotCalled(t, "CountWeeklyAssessmentsByUserID")
	})

	t.Run("Rejected When Another Submission Holds The Lock", func(t *testing.T) {
		mockRepo := new(MockAssessmentRepository)
		mockLocker := new(MockLockerService)
		mockEscalation := new(MockEscalationService)
		uc := newTestAssessmentUsecase(mockRepo, mockLocker, mockEscalation)

		mockLocker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		response, err := uc.SubmitWeeklyAssessment(ctx, &requests.SubmitWeeklyAssessment{
			UserID:    "user-1",
			Responses: calmCheckIn(),
		})

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "FindLatestCompletedAtByUserID")
		mockLocker.AssertNotCalled(t, "Unlock")
	})

	t.Run("Rejected On Out Of Vocabulary Answer", func(t *testing.T) {
		mockRepo := new(MockAssessmentRepository)
		mockLocker := new(MockLockerService)
		mockEscalation := new(MockEscalationService)
		uc := newTestAssessmentUsecase(mockRepo, mockLocker, mockEscalation)

		answers := calmCheckIn()
		answers.AnxietyFrequency = "7"

		response, err := uc.SubmitWeeklyAssessment(ctx, &requests.SubmitWeeklyAssessment{
			UserID:    "user-1",
			Responses: answers,
		})

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		mockLocker.AssertNotCalled(t, "TryLock")
	})
}

func TestAssessmentUsecase_FindEligibility(t *testing.T) {
	ctx := context.Background()

	t.Run("Eligible With No History", func(t *testing.T) {
		mockRepo := new(MockAssessmentRepository)
		uc := newTestAssessmentUsecase(mockRepo, new(MockLockerService), new(MockEscalationService))

		mockRepo.On("FindLatestCompletedAtByUserID", mock.Anything, "user-1").Return(nil, nil)

		response, err := uc.FindEligibility(ctx, &requests.FindEligibility{UserID: "user-1"})

		assert.NoError(t, err)
		assert.True(t, response.Eligible)
		assert.Equal(t, 0, response.DaysRemaining)
		assert.Nil(t, response.NextAvailableAt)
	})

	t.Run("Locked With Recent Submission", func(t *testing.T) {
		mockRepo := new(MockAssessmentRepository)
		uc := newTestAssessmentUsecase(mockRepo, new(MockLockerService), new(MockEscalationService))

		lastCompletedAt := time.Now().UTC().Add(-2 * 24 * time.Hour)
		mockRepo.On("FindLatestCompletedAtByUserID", mock.Anything, "user-1").Return(&lastCompletedAt, nil)

		response, err := uc.FindEligibility(ctx, &requests.FindEligibility{UserID: "user-1"})

		assert.NoError(t, err)
		assert.False(t, response.Eligible)
		assert.Equal(t, 5, response.DaysRemaining)
		if assert.NotNil(t, response.NextAvailableAt) {
			assert.Equal(t, lastCompletedAt.Add(7*24*time.Hour), *response.NextAvailableAt)
		}
	})

	t.Run("Eligible Again After Seven Days", func(t *testing.T) {
		mockRepo := new(MockAssessmentRepository)
		uc := newTestAssessmentUsecase(mockRepo, new(MockLockerService), new(MockEscalationService))

		lastCompletedAt := time.Now().UTC().Add(-7*24*time.Hour - time.Minute)
		mockRepo.On("FindLatestCompletedAtByUserID", mock.Anything, "user-1").Return(&lastCompletedAt, nil)

		response, err := uc.FindEligibility(ctx, &requests.FindEligibility{UserID: "user-1"})

		assert.NoError(t, err)
		assert.True(t, response.Eligible)
		assert.Equal(t, 0, response.DaysRemaining)
	})
}

func TestAssessmentUsecase_FindAssessmentHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Stored Assessments Mapped To Responses", func(t *testing.T) {
		mockRepo := new(MockAssessmentRepository)
		uc := newTestAssessmentUsecase(mockRepo, new(MockLockerService), new(MockEscalationService))

		stored := []models.WeeklyAssessment{
			{ID: "a-2", UserID: "user-1", WeekNumber: 2, RiskScore: 9, RiskLevel: risk.LevelHigh, NeedsEscalation: true},
			{ID: "a-1", UserID: "user-1", WeekNumber: 1, RiskScore: 3, RiskLevel: risk.LevelLow},
		}
		mockRepo.On("FindWeeklyAssessmentsByUserID", mock.Anything, "user-1").Return(stored, nil)

		history, err := uc.FindAssessmentHistory(ctx, &requests.FindAssessmentHistory{UserID: "user-1"})

		assert.NoError(t, err)
		assert.Len(t, history, 2)
		assert.Equal(t, "a-2", history[0].ID)
		assert.Equal(t, 2, history[0].WeekNumber)
		assert.True(t, history[0].NeedsEscalation)
	})

	t.Run("Empty History Returns Empty Slice", func(t *testing.T) {
		mockRepo := new(MockAssessmentRepository)
		uc := newTestAssessmentUsecase(mockRepo, new(MockLockerService), new(MockEscalationService))

		mockRepo.On("FindWeeklyAssessmentsByUserID", mock.Anything, "user-1").Return([]models.WeeklyAssessment{}, nil)

		history, err := uc.FindAssessmentHistory(ctx, &requests.FindAssessmentHistory{UserID: "user-1"})

		assert.NoError(t, err)
		assert.NotNil(t, history)
		assert.Len(t, history, 0)
	})
}
