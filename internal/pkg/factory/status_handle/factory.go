package status_handle

import (
	"fmt"

	"freight/internal/entities"
	shipmentservice "freight/internal/service/shipment"
)

// StatusDetails — поля входящего события, из которых собирается payload
// перехода. Для большинства статусов они не нужны.
type StatusDetails struct {
	Reason       string
	PODConfirmed bool
	PODSignature string
}

type PayloadFactory struct{}

func NewPayloadFactory() *PayloadFactory {
	return &PayloadFactory{}
}

// GetPayload собирает типизированный payload для целевого статуса.
// Статусы без обязательных полей получают nil payload.
func (f *PayloadFactory) GetPayload(status entities.ShipmentStatusType, details StatusDetails) (entities.StatusPayload, error) {
	switch status {
	case entities.ShipmentQuoted,
		entities.ShipmentBooked,
		entities.ShipmentPickup,
		entities.ShipmentInTransit,
		entities.ShipmentInvoiced:
		return nil, nil

	case entities.ShipmentDocument:
		// завершение идёт только через AttemptCompletion с проверкой гейта
		return nil, fmt.Errorf("%w: %s", shipmentservice.ErrCompletionRequired, status)

	case entities.ShipmentCancelled:
		return entities.CancelledPayload{Reason: details.Reason}, nil

	case entities.ShipmentDelivered:
		return entities.DeliveredPayload{
			PODConfirmed: details.PODConfirmed,
			Signature:    details.PODSignature,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", shipmentservice.ErrInvalidStatus, status)
	}
}
