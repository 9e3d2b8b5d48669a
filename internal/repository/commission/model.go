package commission

import "time"

type CommissionDB struct {
	ID               int64
	ShipmentID       string
	Type             string
	Rate             float64
	BaseAmount       int64
	CommissionAmount int64
	Status           string
	CreatedAt        time.Time
	PaidAt           *time.Time
}

type CommissionModifyDB struct {
	ID               *int64
	ShipmentID       *string
	Type             *string
	Rate             *float64
	BaseAmount       *int64
	CommissionAmount *int64
	Status           *string
	PaidAt           *time.Time
}
