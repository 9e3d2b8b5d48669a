//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=commission_paid_put_test
package commission_paid_put

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
	MarkPaid(ctx context.Context, shipmentID string, paidAt time.Time) (*entities.Commission, error)
}
