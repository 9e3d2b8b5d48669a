//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_deadline_put_test
package shipment_deadline_put

import (
	"context"
	"time"

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
	ReviseDeadline(ctx context.Context, id string, deadline time.Time) (*entities.Shipment, error)
}
