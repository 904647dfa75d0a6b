package requests

import "waitingwell-service/internal/pkg/constvars"

// OnboardingAnswers is the one-time intake shape: the four frequency items
// plus the categorical risk flags only collected at intake.
type OnboardingAnswers struct {
	AnxietyFrequency      string `json:"anxietyFrequency" validate:"required,likert"`
	WorryFrequency        string `json:"worryFrequency" validate:"required,likert"`
	DepressionFrequency   string `json:"depressionFrequency" validate:"required,likert"`
	AnhedoniaFrequency    string `json:"anhedoniaFrequency" validate:"required,likert"`
	SuicidalThoughts      string `json:"suicidalThoughts" validate:"required,yes_no"`
	SelfHarm              string `json:"selfHarm" validate:"required,yes_no"`
	SubstanceUse          string `json:"substanceUse" validate:"required,oneof=decreased same increased not-applicable"`
	SocialWithdrawal      string `json:"socialWithdrawal" validate:"required,oneof=none some significant"`
	FunctioningImpairment string `json:"functioningImpairment" validate:"required,oneof=none mild moderate severe"`
	SleepQuality          string `json:"sleepQuality" validate:"required,sleep_quality"`
}

type SubmitOnboarding struct {
	UserID    string            `json:"user_id" validate:"required"`
	Responses OnboardingAnswers `json:"responses" validate:"required"`
}

func (r *SubmitOnboarding) ResponseMap() map[string]string {
	return map[string]string{
		constvars.QuestionAnxietyFrequency:      r.Responses.AnxietyFrequency,
		constvars.QuestionWorryFrequency:        r.Responses.WorryFrequency,
		constvars.QuestionDepressionFrequency:   r.Responses.DepressionFrequency,
		constvars.QuestionAnhedoniaFrequency:    r.Responses.AnhedoniaFrequency,
		constvars.QuestionSuicidalThoughts:      r.Responses.SuicidalThoughts,
		constvars.QuestionSelfHarm:              r.Responses.SelfHarm,
		constvars.QuestionSubstanceUse:          r.Responses.SubstanceUse,
		constvars.QuestionSocialWithdrawal:      r.Responses.SocialWithdrawal,
		constvars.QuestionFunctioningImpairment: r.Responses.FunctioningImpairment,
		constvars.QuestionSleepQuality:          r.Responses.SleepQuality,
	}
}

type FindOnboarding struct {
	UserID string `validate:"required"`
}
