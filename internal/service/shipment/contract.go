//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"freight/internal/entities"
	"freight/internal/service/documents"
	"freight/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)
	GetByID(ctx context.Context, id string) (*entities.Shipment, error)

	// Update применяет изменения только если версия в базе совпадает
	// с expectedVersion, иначе возвращает ErrStaleWrite.
	Update(ctx context.Context, shipmentModify entities.ShipmentModify, expectedVersion int64) (*entities.Shipment, error)

	GetOpenShipments(ctx context.Context) ([]entities.Shipment, error)
}

// BillingGateway доставляет сигнал о готовности к выставлению счёта.
// Канал fire-and-forget: его отказ не откатывает переход статуса.
type BillingGateway interface {
	NotifyBillingReady(ctx context.Context, event entities.BillingReadyEvent) error
}

type TransitionValidator interface {
	CanTransition(current, proposed entities.ShipmentStatusType) bool
	AssertTransition(current, proposed entities.ShipmentStatusType) error
}

type DocumentGate interface {
	Evaluate(docs entities.DocumentStatus, serviceType entities.ServiceTypeType) documents.Evaluation
}

type SLAEvaluator interface {
	Evaluate(deadline time.Time, status entities.ShipmentStatusType, now time.Time) entities.SLAEvaluation
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
