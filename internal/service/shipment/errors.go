package shipment

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShipmentID     = errors.New("invalid shipment id")
	ErrInvalidServiceType    = errors.New("invalid service type")
	ErrInvalidStatus         = errors.New("invalid shipment status")
	ErrInvalidDocumentState  = errors.New("invalid document state")
	ErrInvalidDeadline       = errors.New("invalid sla deadline")

	ErrShipmentNotFound = errors.New("shipment not found")
	ErrShipmentClosed   = errors.New("shipment is closed")
	ErrConflict         = errors.New("shipment already exists")

	ErrMissingCancellationReason = errors.New("cancellation reason is required")
	ErrPODNotConfirmed           = errors.New("proof of delivery confirmation is required")

	// ErrCompletionRequired: статус document достижим только через
	// AttemptCompletion — прямая смена статуса обошла бы документный гейт
	// и не отправила бы сигнал биллингу.
	ErrCompletionRequired = errors.New("document status requires the completion flow")

	// ErrStaleWrite сигнализирует конфликт версий: снапшот устарел,
	// вызывающий должен перечитать перевозку и повторить попытку.
	ErrStaleWrite = errors.New("stale write: shipment version conflict")
)

// CompletionBlockedError несёт полный список невыполненных предпосылок
// завершения. Список никогда не усекается до первой причины: UI показывает
// чеклист целиком.
type CompletionBlockedError struct {
	Reasons []entities.BlockingReason
}

func (e *CompletionBlockedError) Error() string {
	fields := make([]string, 0, len(e.Reasons))
	for _, reason := range e.Reasons {
		fields = append(fields, fmt.Sprintf("%s: %s", reason.Field, reason.Message))
	}
	return "completion blocked: " + strings.Join(fields, "; ")
}
