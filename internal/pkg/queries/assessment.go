package queries

const (
	InsertWeeklyAssessment = `
		INSERT INTO weekly_assessments (id, user_id, week_number, responses, risk_score, risk_level, needs_escalation, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	FindWeeklyAssessmentsByUserID = `
		SELECT id, user_id, week_number, responses, risk_score, risk_level, needs_escalation, completed_at
		FROM weekly_assessments
		WHERE user_id = $1
		ORDER BY completed_at DESC
	`

	CountWeeklyAssessmentsByUserID = `
		SELECT COUNT(*)
		FROM weekly_assessments
		WHERE user_id = $1
	`

	FindLatestCompletedAtByUserID = `
		SELECT completed_at
		FROM weekly_assessments
		WHERE user_id = $1
		ORDER BY completed_at DESC
		LIMIT 1
	`
)
