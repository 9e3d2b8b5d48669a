//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=commission_test
package commission

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, commissionModify entities.CommissionModify) (*entities.Commission, error)
	GetByShipmentID(ctx context.Context, shipmentID string) (*entities.Commission, error)
	Update(ctx context.Context, commissionModify entities.CommissionModify) (*entities.Commission, error)
}
