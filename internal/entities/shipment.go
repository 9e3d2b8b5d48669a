package entities

import "time"

type Shipment struct {
	ID                 string
	Status             ShipmentStatusType
	ServiceType        ServiceTypeType
	SLADeadline        time.Time
	Documents          DocumentStatus
	CustomerReference  string
	CancellationReason string
	PODSignature       string
	CompletedAt        *time.Time
	StatusChangedAt    time.Time
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type ShipmentStatusType string

const (
	ShipmentQuoted    ShipmentStatusType = "quoted"
	ShipmentBooked    ShipmentStatusType = "booked"
	ShipmentPickup    ShipmentStatusType = "pickup"
	ShipmentInTransit ShipmentStatusType = "in_transit"
	ShipmentDelivered ShipmentStatusType = "delivered"
	ShipmentDocument  ShipmentStatusType = "document"
	ShipmentInvoiced  ShipmentStatusType = "invoiced"
	ShipmentCancelled ShipmentStatusType = "cancelled"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, закрыта ли перевозка: после invoiced и cancelled
// агрегат неизменяем.
func (s ShipmentStatusType) IsTerminal() bool {
	return s == ShipmentInvoiced || s == ShipmentCancelled
}

type ServiceTypeType string

const (
	ServiceOBC ServiceTypeType = "OBC"
	ServiceNFO ServiceTypeType = "NFO"
)

func (t ServiceTypeType) String() string {
	return string(t)
}

type DocumentNameType string

const (
	DocAWB  DocumentNameType = "awb"
	DocHAWB DocumentNameType = "hawb"
	DocMAWB DocumentNameType = "mawb"
	DocPOD  DocumentNameType = "pod"
)

func (d DocumentNameType) String() string {
	return string(d)
}

type DocumentStateType string

const (
	DocumentMissing  DocumentStateType = "missing"
	DocumentPending  DocumentStateType = "pending"
	DocumentComplete DocumentStateType = "complete"
)

func (d DocumentStateType) String() string {
	return string(d)
}

// DocumentStatus хранит состояние каждого документного слота перевозки.
// Пустое значение слота эквивалентно missing.
type DocumentStatus struct {
	AWB  DocumentStateType
	HAWB DocumentStateType
	MAWB DocumentStateType
	POD  DocumentStateType
}

func (d DocumentStatus) State(name DocumentNameType) DocumentStateType {
	var state DocumentStateType
	switch name {
	case DocAWB:
		state = d.AWB
	case DocHAWB:
		state = d.HAWB
	case DocMAWB:
		state = d.MAWB
	case DocPOD:
		state = d.POD
	}

	if state == "" {
		return DocumentMissing
	}
	return state
}

type ShipmentModify struct {
	ID                 *string
	Status             *ShipmentStatusType
	ServiceType        *ServiceTypeType
	SLADeadline        *time.Time
	CustomerReference  *string
	CancellationReason *string
	PODSignature       *string
	CompletedAt        *time.Time
	StatusChangedAt    *time.Time
	Documents          *DocumentStatusModify
}

type DocumentStatusModify struct {
	AWB  *DocumentStateType
	HAWB *DocumentStateType
	MAWB *DocumentStateType
	POD  *DocumentStateType
}
