package requests

import "waitingwell-service/internal/pkg/constvars"

// WeeklyCheckInAnswers carries the weekly self-report. Frequencies arrive
// as strings (the app transmits likert answers that way) and are validated
// once here, at the boundary, before any scoring happens. The crisis flags
// collected at intake are deliberately absent from the weekly shape.
type WeeklyCheckInAnswers struct {
	AnxietyFrequency    string `json:"anxietyFrequency" validate:"required,likert"`
	WorryFrequency      string `json:"worryFrequency" validate:"required,likert"`
	DepressionFrequency string `json:"depressionFrequency" validate:"required,likert"`
	AnhedoniaFrequency  string `json:"anhedoniaFrequency" validate:"required,likert"`
	SleepQuality        string `json:"sleepQuality" validate:"required,sleep_quality"`
	FunctioningLevel    string `json:"functioningLevel" validate:"required,oneof=full managing struggling unable"`
	SubstanceUse        string `json:"substanceUse" validate:"omitempty,oneof=decreased same increased not-applicable"`
	SocialWithdrawal    string `json:"socialWithdrawal" validate:"omitempty,oneof=none some significant"`
}

type SubmitWeeklyAssessment struct {
	UserID string `json:"user_id" validate:"required"`
	// WeekNumber is accepted but ignored; the server derives it from the
	// stored history so clients cannot fabricate gaps or duplicates.
	WeekNumber int                  `json:"week_number,omitempty"`
	Responses  WeeklyCheckInAnswers `json:"responses" validate:"required"`
}

func (r *SubmitWeeklyAssessment) ResponseMap() map[string]string {
	m := map[string]string{
		constvars.QuestionAnxietyFrequency:    r.Responses.AnxietyFrequency,
		constvars.QuestionWorryFrequency:      r.Responses.WorryFrequency,
		constvars.QuestionDepressionFrequency: r.Responses.DepressionFrequency,
		constvars.QuestionAnhedoniaFrequency:  r.Responses.AnhedoniaFrequency,
		constvars.QuestionSleepQuality:        r.Responses.SleepQuality,
		constvars.QuestionFunctioningLevel:    r.Responses.FunctioningLevel,
	}
	if r.Responses.SubstanceUse != "" {
		m[constvars.QuestionSubstanceUse] = r.Responses.SubstanceUse
	}
	if r.Responses.SocialWithdrawal != "" {
		m[constvars.QuestionSocialWithdrawal] = r.Responses.SocialWithdrawal
	}
	return m
}

type FindAssessmentHistory struct {
	UserID string `validate:"required"`
}

type FindEligibility struct {
	UserID string `validate:"required"`
}
