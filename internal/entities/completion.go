package entities

import "time"

// Confirmations — ручные подтверждения оператора перед закрытием перевозки.
// CWTValidated обязателен только для NFO.
type Confirmations struct {
	ExtraCostsRecorded bool
	DocumentsComplete  bool
	CWTValidated       bool
}

// BlockingReason — одна невыполненная предпосылка завершения,
// в формате для чеклиста в UI.
type BlockingReason struct {
	Field   string
	Message string
}

// BillingReadyEvent — сигнал биллингу, что перевозка готова к выставлению
// счёта. Публикуется после фиксации перехода delivered -> document.
type BillingReadyEvent struct {
	ShipmentID  string    `json:"shipment_id"`
	CompletedAt time.Time `json:"completed_at"`
}

type CompletionResult struct {
	Shipment *Shipment
	Event    BillingReadyEvent
}
