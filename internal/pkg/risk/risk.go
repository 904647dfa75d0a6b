// Package risk implements the PHQ-4-derived scoring model behind the
// onboarding intake and weekly check-ins. Scoring is deliberately a plain
// additive point model so the mapping from answers to score stays auditable.
package risk

import (
	"strconv"
	"waitingwell-service/internal/pkg/constvars"
)

// Level is the classification band derived from a risk score.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
	LevelCrisis   Level = "crisis"
)

// MaxScore caps the additive total. Safety-critical flags carry enough
// weight that a single positive crisis answer dominates the frequency items.
const MaxScore = 15

var frequencyQuestions = []string{
	constvars.QuestionAnxietyFrequency,
	constvars.QuestionWorryFrequency,
	constvars.QuestionDepressionFrequency,
	constvars.QuestionAnhedoniaFrequency,
}

// flagPoints maps a categorical answer to its fixed point contribution.
// Unrecognized or absent values contribute nothing.
var flagPoints = []struct {
	question string
	answer   string
	points   int
}{
	{constvars.QuestionSleepQuality, constvars.SleepQualityPoor, 1},
	{constvars.QuestionSuicidalThoughts, constvars.AnswerYes, 5},
	{constvars.QuestionSelfHarm, constvars.AnswerYes, 3},
	{constvars.QuestionSubstanceUse, constvars.SubstanceUseIncreased, 2},
	{constvars.QuestionSocialWithdrawal, constvars.SocialWithdrawalSignificant, 1},
	{constvars.QuestionFunctioningImpairment, constvars.FunctioningImpairmentSevere, 2},
}

// ComputeScore sums the four 0-3 frequency answers with the fixed flag
// points and clamps the result to MaxScore. Absent keys contribute zero.
// Frequency values arrive as strings; a value that does not parse as an
// integer also contributes zero rather than failing the whole submission.
func ComputeScore(responses map[string]string) int {
	score := 0

	for _, question := range frequencyQuestions {
		raw, ok := responses[question]
		if !ok {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		score += value
	}

	for _, flag := range flagPoints {
		if responses[flag.question] == flag.answer {
			score += flag.points
		}
	}

	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Classify maps a score onto a Level, highest threshold first.
func Classify(score int) Level {
	switch {
	case score >= 12:
		return LevelCrisis
	case score >= 8:
		return LevelHigh
	case score >= 5:
		return LevelModerate
	default:
		return LevelLow
	}
}

// RequiresEscalation is the single gate for crisis follow-up behavior.
// Consumers must use this rather than re-deriving from the raw score, so
// threshold changes stay in one place.
func RequiresEscalation(level Level) bool {
	return level == LevelHigh || level == LevelCrisis
}
