package commission

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRate           = errors.New("rate out of range")
	ErrInvalidBaseAmount     = errors.New("base amount must be positive")
	ErrInvalidCommissionType = errors.New("invalid commission type")
	ErrAmountMismatch        = errors.New("commission amount mismatch")

	ErrCommissionNotFound = errors.New("commission not found")
	ErrConflict           = errors.New("shipment already has a commission")
	ErrAlreadyPaid        = errors.New("commission already paid")
)
