package models

import (
	"time"
	"waitingwell-service/internal/pkg/risk"
)

// OnboardingResponse is the one-time intake record. BaselineAnxietyLevel
// is the classification of the initial score, kept as the user's reference
// point for later trend displays.
type OnboardingResponse struct {
	ID                   string            `json:"id"`
	UserID               string            `json:"user_id"`
	Responses            map[string]string `json:"responses"`
	RiskScore            int               `json:"risk_score"`
	BaselineAnxietyLevel risk.Level        `json:"baseline_anxiety_level"`
	CompletedAt          time.Time         `json:"completed_at"`
}
