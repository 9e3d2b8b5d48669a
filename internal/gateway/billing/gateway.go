package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"freight/internal/entities"
	"freight/pkg/logger"
	retrierconfig "freight/pkg/retrier"
	"freight/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 500 * time.Millisecond
	maxInterval     = 5 * time.Second
	maxElapsedTime  = 15 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

// Gateway шлёт сигнал готовности к выставлению счёта в топик биллинга.
// Ключ сообщения — id перевозки, чтобы события одной перевозки
// попадали в одну партицию.
type Gateway struct {
	log      logger.Logger
	producer MessageSender
	topic    string
	retrier  *backoff_adapter.Retrier
}

func New(log logger.Logger, producer MessageSender, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	return &Gateway{
		log:      log.With(logger.NewField("topic", topic)),
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) NotifyBillingReady(ctx context.Context, event entities.BillingReadyEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal billing-ready event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(event.ShipmentID),
		Value: sarama.ByteEncoder(payload),
	}

	err = g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		_, _, sendErr := g.producer.SendMessage(msg)
		return sendErr
	})
	if err != nil {
		billingSignalsFailed.Inc()
		return fmt.Errorf("send billing-ready signal: %w", err)
	}

	billingSignalsSent.Inc()
	g.log.With(
		logger.NewField("shipment", event.ShipmentID),
	).Info("billing-ready signal sent")

	return nil
}
