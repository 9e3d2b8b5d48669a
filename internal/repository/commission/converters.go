package commission

import (
	"freight/internal/entities"
)

func ToDomain(c *CommissionDB) *entities.Commission {
	if c == nil {
		return nil
	}

	return &entities.Commission{
		ID:               c.ID,
		ShipmentID:       c.ShipmentID,
		Type:             entities.CommissionTypeType(c.Type),
		Rate:             c.Rate,
		BaseAmount:       entities.Money(c.BaseAmount),
		CommissionAmount: entities.Money(c.CommissionAmount),
		Status:           entities.CommissionStatusType(c.Status),
		CreatedAt:        c.CreatedAt,
		PaidAt:           c.PaidAt,
	}
}

func FromDomainModify(commissionModify *entities.CommissionModify) *CommissionModifyDB {
	if commissionModify == nil {
		return nil
	}
	commissionDB := &CommissionModifyDB{}

	if commissionModify.ID != nil {
		commissionDB.ID = commissionModify.ID
	}
	if commissionModify.ShipmentID != nil {
		commissionDB.ShipmentID = commissionModify.ShipmentID
	}
	if commissionModify.Type != nil {
		commissionType := commissionModify.Type.String()
		commissionDB.Type = &commissionType
	}
	if commissionModify.Rate != nil {
		commissionDB.Rate = commissionModify.Rate
	}
	if commissionModify.BaseAmount != nil {
		base := int64(*commissionModify.BaseAmount)
		commissionDB.BaseAmount = &base
	}
	if commissionModify.CommissionAmount != nil {
		amount := int64(*commissionModify.CommissionAmount)
		commissionDB.CommissionAmount = &amount
	}
	if commissionModify.Status != nil {
		status := commissionModify.Status.String()
		commissionDB.Status = &status
	}
	if commissionModify.PaidAt != nil {
		commissionDB.PaidAt = commissionModify.PaidAt
	}

	return commissionDB
}
