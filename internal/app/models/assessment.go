package models

import (
	"time"
	"waitingwell-service/internal/pkg/risk"
)

// WeeklyAssessment is one row of a user's append-only check-in log.
// RiskLevel and NeedsEscalation are stored denormalized for query
// convenience but are always derived from RiskScore at write time.
type WeeklyAssessment struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	WeekNumber      int               `json:"week_number"`
	Responses       map[string]string `json:"responses"`
	RiskScore       int               `json:"risk_score"`
	RiskLevel       risk.Level        `json:"risk_level"`
	NeedsEscalation bool              `json:"needs_escalation"`
	CompletedAt     time.Time         `json:"completed_at"`
}
