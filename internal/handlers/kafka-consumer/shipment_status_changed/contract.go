package shipment_status_changed

import (
	"context"

	"freight/internal/entities"
	"freight/internal/pkg/factory/status_handle"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ChangeStatus(ctx context.Context, id string, proposed entities.ShipmentStatusType, payload entities.StatusPayload) (*entities.Shipment, error)
}

type PayloadFactory interface {
	GetPayload(status entities.ShipmentStatusType, details status_handle.StatusDetails) (entities.StatusPayload, error)
}
