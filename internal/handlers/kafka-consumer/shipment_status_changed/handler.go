package shipment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"freight/internal/entities"
	"freight/internal/pkg/factory/status_handle"
	shipmentservice "freight/internal/service/shipment"
	"freight/internal/service/transition"
	"freight/pkg/logger"
)

type Handler struct {
	shipmentService          Service
	payloadFactory           PayloadFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, shipmentService Service, payloadFactory PayloadFactory, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		shipmentService:          shipmentService,
		payloadFactory:           payloadFactory,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("shipment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("shipment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim: при отмене контекста и
// при конфликте версий сообщение не помечается и будет обработано повторно.
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shipment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shipment.status.changed processing")

	proposed := entities.ShipmentStatusType(event.Status)
	payload, err := h.payloadFactory.GetPayload(proposed, status_handle.StatusDetails{
		Reason:       event.Reason,
		PODConfirmed: event.PODConfirmed,
		PODSignature: event.PODSignature,
	})
	if err != nil {
		if errors.Is(err, shipmentservice.ErrCompletionRequired) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler document status only reachable via completion")
		} else {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler unknown status for shipment")
		}
		sess.MarkMessage(message, "")
		return false
	}

	shipment, err := h.shipmentService.ChangeStatus(ctx, event.ShipmentID, proposed, payload)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipmentservice.ErrStaleWrite):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler version conflict, message will be reprocessed")
			return true

		case errors.Is(err, shipmentservice.ErrShipmentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler shipment not found")

		case errors.Is(err, transition.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler illegal transition for shipment")

		case errors.Is(err, shipmentservice.ErrShipmentClosed):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler shipment already closed")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler failed to process shipment")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("shipment", shipment.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", shipment.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("shipment.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
