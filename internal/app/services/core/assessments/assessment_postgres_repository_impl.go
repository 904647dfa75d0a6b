package assessments

import (
	"context"
	"database/sql"
	"sync"
	"time"
	"waitingwell-service/internal/app/contracts"
	"waitingwell-service/internal/app/models"
	"waitingwell-service/internal/pkg/constvars"
	"waitingwell-service/internal/pkg/exceptions"
	"waitingwell-service/internal/pkg/queries"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type assessmentPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	assessmentPostgresRepositoryInstance contracts.AssessmentRepository
	onceAssessmentPostgresRepository     sync.Once
)

func NewAssessmentPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.AssessmentRepository {
	onceAssessmentPostgresRepository.Do(func() {
		instance := &assessmentPostgresRepository{
			DB:  db,
			Log: logger,
		}
		assessmentPostgresRepositoryInstance = instance
	})
	return assessmentPostgresRepositoryInstance
}

func (r *assessmentPostgresRepository) CreateWeeklyAssessment(ctx context.Context, assessment *models.WeeklyAssessment) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("assessmentPostgresRepository.CreateWeeklyAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, assessment.UserID),
		zap.Int(constvars.LoggingWeekNumberKey, assessment.WeekNumber),
	)

	responsesJSON, err := json.Marshal(assessment.Responses)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	var id string
	err = r.DB.QueryRowContext(ctx, queries.InsertWeeklyAssessment,
		assessment.ID, assessment.UserID, assessment.WeekNumber, responsesJSON,
		assessment.RiskScore, assessment.RiskLevel, assessment.NeedsEscalation,
		assessment.CompletedAt,
	).Scan(&id)
	if err != nil {
		r.Log.Error("assessmentPostgresRepository.CreateWeeklyAssessment error inserting assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrPostgresDBInsertData(err)
	}

	return id, nil
}

func (r *assessmentPostgresRepository) FindWeeklyAssessmentsByUserID(ctx context.Context, userID string) ([]models.WeeklyAssessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("assessmentPostgresRepository.FindWeeklyAssessmentsByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.FindWeeklyAssessmentsByUserID, userID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBSelectData(err)
	}
	defer rows.Close()

	assessments := make([]models.WeeklyAssessment, 0)
	for rows.Next() {
		var assessment models.WeeklyAssessment
		var responsesJSON []byte
		err := rows.Scan(
			&assessment.ID, &assessment.UserID, &assessment.WeekNumber, &responsesJSON,
			&assessment.RiskScore, &assessment.RiskLevel, &assessment.NeedsEscalation,
			&assessment.CompletedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBSelectData(err)
		}
		if err := json.Unmarshal(responsesJSON, &assessment.Responses); err != nil {
			return nil, exceptions.ErrPostgresDBSelectData(err)
		}
		assessments = append(assessments, assessment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBSelectData(err)
	}

	return assessments, nil
}

func (r *assessmentPostgresRepository) CountWeeklyAssessmentsByUserID(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, queries.CountWeeklyAssessmentsByUserID, userID).Scan(&count)
	if err != nil {
		return 0, exceptions.ErrPostgresDBCountData(err)
	}
	return count, nil
}

func (r *assessmentPostgresRepository) FindLatestCompletedAtByUserID(ctx context.Context, userID string) (*time.Time, error) {
	var completedAt time.Time
	err := r.DB.QueryRowContext(ctx, queries.FindLatestCompletedAtByUserID, userID).Scan(&completedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBSelectData(err)
	}
	return &completedAt, nil
}
