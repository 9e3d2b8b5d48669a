package shipment

import (
	"freight/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		ID:          s.ID,
		Status:      entities.ShipmentStatusType(s.Status),
		ServiceType: entities.ServiceTypeType(s.ServiceType),
		SLADeadline: s.SLADeadline,
		Documents: entities.DocumentStatus{
			AWB:  entities.DocumentStateType(s.DocAWB),
			HAWB: entities.DocumentStateType(s.DocHAWB),
			MAWB: entities.DocumentStateType(s.DocMAWB),
			POD:  entities.DocumentStateType(s.DocPOD),
		},
		CustomerReference:  s.CustomerReference,
		CancellationReason: s.CancellationReason,
		PODSignature:       s.PODSignature,
		CompletedAt:        s.CompletedAt,
		StatusChangedAt:    s.StatusChangedAt,
		Version:            s.Version,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func FromDomainModify(shipmentModify *entities.ShipmentModify) *ShipmentModifyDB {
	if shipmentModify == nil {
		return nil
	}
	shipmentDB := &ShipmentModifyDB{}

	if shipmentModify.ID != nil {
		shipmentDB.ID = shipmentModify.ID
	}
	if shipmentModify.Status != nil {
		status := shipmentModify.Status.String()
		shipmentDB.Status = &status
	}
	if shipmentModify.ServiceType != nil {
		serviceType := shipmentModify.ServiceType.String()
		shipmentDB.ServiceType = &serviceType
	}
	if shipmentModify.SLADeadline != nil {
		shipmentDB.SLADeadline = shipmentModify.SLADeadline
	}
	if shipmentModify.CustomerReference != nil {
		shipmentDB.CustomerReference = shipmentModify.CustomerReference
	}
	if shipmentModify.CancellationReason != nil {
		shipmentDB.CancellationReason = shipmentModify.CancellationReason
	}
	if shipmentModify.PODSignature != nil {
		shipmentDB.PODSignature = shipmentModify.PODSignature
	}
	if shipmentModify.CompletedAt != nil {
		shipmentDB.CompletedAt = shipmentModify.CompletedAt
	}
	if shipmentModify.StatusChangedAt != nil {
		shipmentDB.StatusChangedAt = shipmentModify.StatusChangedAt
	}
	if shipmentModify.Documents != nil {
		if shipmentModify.Documents.AWB != nil {
			state := shipmentModify.Documents.AWB.String()
			shipmentDB.DocAWB = &state
		}
		if shipmentModify.Documents.HAWB != nil {
			state := shipmentModify.Documents.HAWB.String()
			shipmentDB.DocHAWB = &state
		}
		if shipmentModify.Documents.MAWB != nil {
			state := shipmentModify.Documents.MAWB.String()
			shipmentDB.DocMAWB = &state
		}
		if shipmentModify.Documents.POD != nil {
			state := shipmentModify.Documents.POD.String()
			shipmentDB.DocPOD = &state
		}
	}

	return shipmentDB
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.Shipment {
	if len(shipmentsDB) == 0 {
		return []entities.Shipment{}
	}

	result := make([]entities.Shipment, len(shipmentsDB))
	for i, shipmentDB := range shipmentsDB {
		result[i] = *ToDomain(&shipmentDB)
	}
	return result
}
