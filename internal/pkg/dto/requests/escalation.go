package requests

import (
	"time"
	"waitingwell-service/internal/pkg/risk"
)

// EscalationAlert is the payload published to the crisis-alerts queue when
// a completed assessment classifies as high or crisis.
type EscalationAlert struct {
	UserID      string     `json:"user_id"`
	Source      string     `json:"source"`
	RecordID    string     `json:"record_id"`
	RiskScore   int        `json:"risk_score"`
	RiskLevel   risk.Level `json:"risk_level"`
	CompletedAt time.Time  `json:"completed_at"`
}

const (
	EscalationSourceOnboarding = "onboarding"
	EscalationSourceWeekly     = "weekly"
)
