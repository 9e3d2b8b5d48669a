package entities

// StatusPayload несёт данные, обязательные для конкретного перехода статуса.
// Вместо нетипизированного мешка полей — по варианту на статус, который
// такие поля требует.
type StatusPayload interface {
	statusPayload()
}

// CancelledPayload обязателен при переходе в cancelled.
type CancelledPayload struct {
	Reason string
}

// DeliveredPayload обязателен при переходе в delivered.
type DeliveredPayload struct {
	PODConfirmed bool
	Signature    string
}

func (CancelledPayload) statusPayload() {}
func (DeliveredPayload) statusPayload() {}
