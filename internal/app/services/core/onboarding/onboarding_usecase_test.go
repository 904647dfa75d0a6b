package onboarding

import (
	"context"
	"testing"
	"time"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/dto/requests"
	"waitingwell-service/internal/pkg/exceptions"
	"waitingwell-service/internal/pkg/risk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockOnboardingRepository struct {
	mock.Mock
}

func (m *MockOnboardingRepository) CreateOnboardingResponse(ctx context.Context, onboarding *models.OnboardingResponse) (string, error) {
	args := m.Called(ctx, onboarding)
	return args.String(0), args.Error(1)
}

func (m *MockOnboardingRepository) FindOnboardingResponseByUserID(ctx context.Context, userID string) (*models.OnboardingResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OnboardingResponse), args.Error(1)
}

type MockEscalationService struct {
	mock.Mock
}

func (m *MockEscalationService) PublishAlert(ctx context.Context, alert *requests.EscalationAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func newTestOnboardingUsecase(repo *MockOnboardingRepository, escalation *MockEscalationService) *onboardingUsecase {
	return &onboardingUsecase{
		OnboardingRepository: repo,
		EscalationService:    escalation,
		Log:                  zap.NewNop(),
	}
}

func settledIntake() requests.OnboardingAnswers {
	return requests.OnboardingAnswers{
		AnxietyFrequency:      "1",
		WorryFrequency:        "1",
		DepressionFrequency:   "0",
		AnhedoniaFrequency:    "0",
		SuicidalThoughts:      "no",
		SelfHarm:              "no",
		SubstanceUse:          "same",
		SocialWithdrawal:      "none",
		FunctioningImpairment: "none",
		SleepQuality:          "fair",
	}
}

func crisisIntake() requests.OnboardingAnswers {
	return requests.OnboardingAnswers{
		AnxietyFrequency:      "2",
		WorryFrequency:        "2",
		DepressionFrequency:   "1",
		AnhedoniaFrequency:    "1",
		SuicidalThoughts:      "yes",
		SelfHarm:              "no",
		SubstanceUse:          "same",
		SocialWithdrawal:      "some",
		FunctioningImpairment: "moderate",
		SleepQuality:          "poor",
	}
}

func TestOnboardingUsecase_SubmitOnboarding(t *testing.T) {
	ctx := context.Background()

	t.Run("First Intake Stores Baseline", func(t *testing.T) {
		mockRepo := new(MockOnboardingRepository)
		mockEscalation := new(MockEscalationService)
		uc := newTestOnboardingUsecase(mockRepo, mockEscalation)

		mockRepo.On("FindOnboardingResponseByUserID", mock.Anything, "user-1").Return(nil, nil)
		mockRepo.On("CreateOnboardingResponse", mock.Anything, mock.MatchedBy(func(record *models.OnboardingResponse) bool {
			return record.UserID == "user-1" && record.BaselineAnxietyLevel == risk.LevelLow
		})).Return("onboarding-id", nil)

		response, err := uc.SubmitOnboarding(ctx, &requests.SubmitOnboarding{
			UserID:    "user-1",
			Responses: settledIntake(),
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, response.RiskScore)
		assert.Equal(t, risk.LevelLow, response.BaselineAnxietyLevel)
		assert.False(t, response.NeedsEscalation)
		mockEscalation.AssertNotCalled(t, "PublishAlert")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Crisis Answers Trigger Escalation", func(t *testing.T) {
		mockRepo := new(MockOnboardingRepository)
		mockEscalation := new(MockEscalationService)
		uc := newTestOnboardingUsecase(mockRepo, mockEscalation)

		mockRepo.On("FindOnboardingResponseByUserID", mock.Anything, "user-1").Return(nil, nil)
		mockRepo.On("CreateOnboardingResponse", mock.Anything, mock.AnythingOfType("*models.OnboardingResponse")).Return("onboarding-id", nil)
		mockEscalation.On("PublishAlert", mock.Anything, mock.MatchedBy(func(alert *requests.EscalationAlert) bool {
			return alert.UserID == "user-1" && alert.Source == requests.EscalationSourceOnboarding
		})).Return(nil)

		response, err := uc.SubmitOnboarding(ctx, &requests.SubmitOnboarding{
			UserID:    "user-1",
			Responses: crisisIntake(),
		})

		assert.NoError(t, err)
		assert.Equal(t, 12, response.RiskScore)
		assert.Equal(t, risk.LevelCrisis, response.BaselineAnxietyLevel)
		assert.True(t, response.NeedsEscalation)
		mockEscalation.AssertExpectations(t)
	})

	t.Run("Second Intake For Same User Is Rejected", func(t *testing.T) {
		mockRepo := new(MockOnboardingRepository)
		mockEscalation := new(MockEscalationService)
		uc := newTestOnboardingUsecase(mockRepo, mockEscalation)

		existing := &models.OnboardingResponse{
			ID:                   "onboarding-id",
			UserID:               "user-1",
			RiskScore:            2,
			BaselineAnxietyLevel: risk.LevelLow,
			CompletedAt:          time.Now().UTC().Add(-24 * time.Hour),
		}
		mockRepo.On("FindOnboardingResponseByUserID", mock.Anything, "user-1").Return(existing, nil)

		response, err := uc.SubmitOnboarding(ctx, &requests.SubmitOnboarding{
			UserID:    "user-1",
			Responses: settledIntake(),
		})

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "CreateOnboardingResponse")
	})

	t.Run("Rejected On Missing Crisis Flag Answer", func(t *testing.T) {
		mockRepo := new(MockOnboardingRepository)
		uc := newTestOnboardingUsecase(mockRepo, new(MockEscalationService))

		answers := settledIntake()
		answers.SuicidalThoughts = ""

		response, err := uc.SubmitOnboarding(ctx, &requests.SubmitOnboarding{
			UserID:    "user-1",
			Responses: answers,
		})

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "FindOnboardingResponseByUserID")
	})
}

func TestOnboardingUsecase_FindOnboardingByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Stored Intake", func(t *testing.T) {
		mockRepo := new(MockOnboardingRepository)
		uc := newTestOnboardingUsecase(mockRepo, new(MockEscalationService))

		record := &models.OnboardingResponse{
			ID:                   "onboarding-id",
			UserID:               "user-1",
			RiskScore:            9,
			BaselineAnxietyLevel: risk.LevelHigh,
			CompletedAt:          time.Now().UTC(),
		}
		mockRepo.On("FindOnboardingResponseByUserID", mock.Anything, "user-1").Return(record, nil)

		response, err := uc.FindOnboardingByUserID(ctx, &requests.FindOnboarding{UserID: "user-1"})

		assert.NoError(t, err)
		assert.Equal(t, "onboarding-id", response.ID)
		assert.Equal(t, risk.LevelHigh, response.BaselineAnxietyLevel)
		assert.True(t, response.NeedsEscalation)
	})

	t.Run("Unknown User Returns Not Found", func(t *testing.T) {
		mockRepo := new(MockOnboardingRepository)
		uc := newTestOnboardingUsecase(mockRepo, new(MockEscalationService))

		mockRepo.On("FindOnboardingResponseByUserID", mock.Anything, "user-2").Return(nil, nil)

		response, err := uc.FindOnboardingByUserID(ctx, &requests.FindOnboarding{UserID: "user-2"})

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
