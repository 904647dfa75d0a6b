package escalations

import (
	"context"
	"sync"
	"waitingwell-service/internal/app/contracts"
	"waitingwell-service/internal/pkg/constvars"
	"waitingwell-service/internal/pkg/dto/requests"
	"waitingwell-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	escalationServiceInstance contracts.EscalationService
	onceEscalationService     sync.Once
)

type escalationService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

// NewEscalationService declares the crisis-alerts queue as durable so
// alerts survive a broker restart; losing an escalation is not acceptable.
func NewEscalationService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EscalationService, error) {
	var initErr error
	onceEscalationService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			initErr = err
			return
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			initErr = err
			return
		}
		escalationServiceInstance = &escalationService{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return escalationServiceInstance, nil
}

func (s *escalationService) PublishAlert(ctx context.Context, alert *requests.EscalationAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrPublishMessage(err)
	}

	s.Log.Info("escalationService.PublishAlert published crisis alert",
		zap.String(constvars.LoggingUserIDKey, alert.UserID),
		zap.String(constvars.LoggingQueueKey, s.Queue),
		zap.Int(constvars.LoggingRiskScoreKey, alert.RiskScore),
		zap.String(constvars.LoggingRiskLevelKey, string(alert.RiskLevel)),
	)
	return nil
}
