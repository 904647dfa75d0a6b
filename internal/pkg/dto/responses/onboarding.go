package responses

import (
	"time"
	"waitingwell-service/internal/pkg/risk"
)

type Onboarding struct {
	ID                   string            `json:"id"`
	UserID               string            `json:"user_id"`
	Responses            map[string]string `json:"responses"`
	RiskScore            int               `json:"risk_score"`
	BaselineAnxietyLevel risk.Level        `json:"baseline_anxiety_level"`
	NeedsEscalation      bool              `json:"needs_escalation"`
	CompletedAt          time.Time         `json:"completed_at"`
}
