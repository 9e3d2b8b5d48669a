//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=commission_post_test
package commission_post

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
	AttachCommission(ctx context.Context, commissionModify entities.CommissionModify) (*entities.Commission, error)
}
