package queries

const (
	InsertOnboardingResponse = `
		INSERT INTO onboarding_responses (id, user_id, responses, risk_score, baseline_anxiety_level, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	FindOnboardingResponseByUserID = `
		SELECT id, user_id, responses, risk_score, baseline_anxiety_level, completed_at
		FROM onboarding_responses
		WHERE user_id = $1
	`
)
