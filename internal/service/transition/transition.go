package transition

import (
	"fmt"

	"freight/internal/entities"
)

// adjacency — таблица допустимых переходов статуса перевозки.
// Отмена возможна только до физической доставки; invoiced и cancelled —
// поглощающие состояния.
var adjacency = map[entities.ShipmentStatusType][]entities.ShipmentStatusType{
	entities.ShipmentQuoted:    {entities.ShipmentBooked, entities.ShipmentCancelled},
	entities.ShipmentBooked:    {entities.ShipmentPickup, entities.ShipmentCancelled},
	entities.ShipmentPickup:    {entities.ShipmentInTransit, entities.ShipmentCancelled},
	entities.ShipmentInTransit: {entities.ShipmentDelivered, entities.ShipmentCancelled},
	entities.ShipmentDelivered: {entities.ShipmentDocument},
	entities.ShipmentDocument:  {entities.ShipmentInvoiced},
	entities.ShipmentInvoiced:  {},
	entities.ShipmentCancelled: {},
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// CanTransition отвечает только на вопрос "легально ли ребро".
// Переход в тот же статус всегда запрещён: пересохранение метаданных
// не должно проходить через валидатор.
func (v *Validator) CanTransition(current, proposed entities.ShipmentStatusType) bool {
	if current == proposed {
		return false
	}

	for _, next := range adjacency[current] {
		if next == proposed {
			return true
		}
	}
	return false
}

func (v *Validator) AssertTransition(current, proposed entities.ShipmentStatusType) error {
	if !v.CanTransition(current, proposed) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, proposed)
	}
	return nil
}

// AllowedNext возвращает копию списка допустимых следующих статусов.
func (v *Validator) AllowedNext(current entities.ShipmentStatusType) []entities.ShipmentStatusType {
	next := adjacency[current]
	result := make([]entities.ShipmentStatusType, len(next))
	copy(result, next)
	return result
}
