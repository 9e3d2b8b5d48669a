//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=commission_get_test
package commission_get

import (
	"context"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetByShipmentID(ctx context.Context, shipmentID string) (*entities.Commission, error)
}
