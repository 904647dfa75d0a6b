package onboarding

import (
	"context"
	"database/sql"
	"sync"
	"waitingwell-service/internal/app/contracts"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/constvars"
	"waitingwell-service/internal/pkg/exceptions"
	"waitingwell-service/internal/pkg/queries"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type onboardingPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	onboardingPostgresRepositoryInstance contracts.OnboardingRepository
	onceOnboardingPostgresRepository     sync.Once
)

func NewOnboardingPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.OnboardingRepository {
	onceOnboardingPostgresRepository.Do(func() {
		instance := &onboardingPostgresRepository{
			DB:  db,
			Log: logger,
		}
		onboardingPostgresRepositoryInstance = instance
	})
	return onboardingPostgresRepositoryInstance
}

func (r *onboardingPostgresRepository) CreateOnboardingResponse(ctx context.Context, onboarding *models.OnboardingResponse) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("onboardingPostgresRepository.CreateOnboardingResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, onboarding.UserID),
	)

	responsesJSON, err := json.Marshal(onboarding.Responses)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	var id string
	err = r.DB.QueryRowContext(ctx, queries.InsertOnboardingResponse,
		onboarding.ID, onboarding.UserID, responsesJSON, onboarding.RiskScore,
		onboarding.BaselineAnxietyLevel, onboarding.CompletedAt,
	).Scan(&id)
	if err != nil {
		r.Log.Error("onboardingPostgresRepository.CreateOnboardingResponse error inserting onboarding",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrPostgresDBInsertData(err)
	}

	return id, nil
}

func (r *onboardingPostgresRepository) FindOnboardingResponseByUserID(ctx context.Context, userID string) (*models.OnboardingResponse, error) {
	var onboarding models.OnboardingResponse
	var responsesJSON []byte
	err := r.DB.QueryRowContext(ctx, queries.FindOnboardingResponseByUserID, userID).Scan(
		&onboarding.ID, &onboarding.UserID, &responsesJSON, &onboarding.RiskScore,
		&onboarding.BaselineAnxietyLevel, &onboarding.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBSelectData(err)
	}
	if err := json.Unmarshal(responsesJSON, &onboarding.Responses); err != nil {
		return nil, exceptions.ErrPostgresDBSelectData(err)
	}

	return &onboarding, nil
}
