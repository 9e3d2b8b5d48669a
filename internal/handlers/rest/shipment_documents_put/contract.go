//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_documents_put_test
package shipment_documents_put

import (
	"context"

	"freight/internal/entities"
	"freight/internal/service/shipment"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateDocuments(ctx context.Context, id string, docs entities.DocumentStatusModify, customerReference *string) (*shipment.View, error)
}
