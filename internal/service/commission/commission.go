package commission

import (
	"context"
	"fmt"
	"strings"
	"time"

	"freight/internal/entities"
)

// amountTolerance — допустимое расхождение между суммой, присланной
// внешним вызывающим, и пересчитанной: один цент в обе стороны.
const amountTolerance = entities.Money(1)

type Commission struct {
	repository Repository
	calculator *Calculator
}

func New(repository Repository, calculator *Calculator) *Commission {
	return &Commission{
		repository: repository,
		calculator: calculator,
	}
}

// AttachCommission привязывает комиссию к перевозке. Сумма всегда
// пересчитывается; присланное значение служит только для сверки.
func (s *Commission) AttachCommission(ctx context.Context, commissionModify entities.CommissionModify) (*entities.Commission, error) {
	if commissionModify.ShipmentID == nil ||
		commissionModify.Type == nil ||
		commissionModify.Rate == nil ||
		commissionModify.BaseAmount == nil {
		return nil, ErrMissingRequiredFields
	}
	if strings.TrimSpace(*commissionModify.ShipmentID) == "" {
		return nil, ErrMissingRequiredFields
	}

	amount, err := s.calculator.Calculate(*commissionModify.BaseAmount, *commissionModify.Rate, *commissionModify.Type)
	if err != nil {
		return nil, err
	}

	if commissionModify.CommissionAmount != nil {
		diff := *commissionModify.CommissionAmount - amount
		if diff > amountTolerance || diff < -amountTolerance {
			return nil, fmt.Errorf("%w: got %s, calculated %s", ErrAmountMismatch, *commissionModify.CommissionAmount, amount)
		}
	}

	status := entities.CommissionPending
	commissionModify.CommissionAmount = &amount
	commissionModify.Status = &status

	created, err := s.repository.Create(ctx, commissionModify)
	if err != nil {
		return nil, fmt.Errorf("create commission: %w", err)
	}

	return created, nil
}

func (s *Commission) GetByShipmentID(ctx context.Context, shipmentID string) (*entities.Commission, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return nil, ErrMissingRequiredFields
	}

	found, err := s.repository.GetByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get commission: %w", err)
	}

	return found, nil
}

// MarkPaid переводит комиссию в paid и фиксирует момент выплаты.
func (s *Commission) MarkPaid(ctx context.Context, shipmentID string, paidAt time.Time) (*entities.Commission, error) {
	current, err := s.GetByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if current.Status == entities.CommissionPaid {
		return nil, ErrAlreadyPaid
	}

	status := entities.CommissionPaid
	updated, err := s.repository.Update(ctx, entities.CommissionModify{
		ID:     &current.ID,
		Status: &status,
		PaidAt: &paidAt,
	})
	if err != nil {
		return nil, fmt.Errorf("mark commission paid: %w", err)
	}

	return updated, nil
}
