package shipment_status_changed

// statusChangedEvent — входящее событие смены статуса перевозки.
type statusChangedEvent struct {
	ShipmentID   string `json:"shipment_id"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
	PODConfirmed bool   `json:"pod_confirmed,omitempty"`
	PODSignature string `json:"pod_signature,omitempty"`
}
