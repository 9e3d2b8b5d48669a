package entities

import "time"

type Commission struct {
	ID               int64
	ShipmentID       string
	Type             CommissionTypeType
	Rate             float64
	BaseAmount       Money
	CommissionAmount Money
	Status           CommissionStatusType
	CreatedAt        time.Time
	PaidAt           *time.Time
}

type CommissionTypeType string

const (
	CommissionPercentage CommissionTypeType = "percentage"
	CommissionFixed      CommissionTypeType = "fixed"
)

func (t CommissionTypeType) String() string {
	return string(t)
}

type CommissionStatusType string

const (
	CommissionPending CommissionStatusType = "pending"
	CommissionPaid    CommissionStatusType = "paid"
)

func (s CommissionStatusType) String() string {
	return string(s)
}

type CommissionModify struct {
	ID               *int64
	ShipmentID       *string
	Type             *CommissionTypeType
	Rate             *float64
	BaseAmount       *Money
	CommissionAmount *Money
	Status           *CommissionStatusType
	PaidAt           *time.Time
}
