package shipment

import "time"

type ShipmentDB struct {
	ID                 string
	Status             string
	ServiceType        string
	SLADeadline        time.Time
	DocAWB             string
	DocHAWB            string
	DocMAWB            string
	DocPOD             string
	CustomerReference  string
	CancellationReason string
	PODSignature       string
	CompletedAt        *time.Time
	StatusChangedAt    time.Time
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type ShipmentModifyDB struct {
	ID                 *string
	Status             *string
	ServiceType        *string
	SLADeadline        *time.Time
	DocAWB             *string
	DocHAWB            *string
	DocMAWB            *string
	DocPOD             *string
	CustomerReference  *string
	CancellationReason *string
	PODSignature       *string
	CompletedAt        *time.Time
	StatusChangedAt    *time.Time
}
