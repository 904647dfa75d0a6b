package responses

import (
	"time"
	"waitingwell-service/internal/pkg/risk"
)

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

type Eligibility struct {
	Eligible        bool       `json:"eligible"`
	NextAvailableAt *time.Time `json:"next_available_at,omitempty"`
	DaysRemaining   int        `json:"days_remaining,omitempty"`
}
