package contracts

import (
	"context"
	"waitingwell-service/internal/pkg/dto/requests"
)

// EscalationService is the channel that informs the crisis-support team
// when a completed assessment needs human follow-up.
type EscalationService interface {
	PublishAlert(ctx context.Context, alert *requests.EscalationAlert) error
}
