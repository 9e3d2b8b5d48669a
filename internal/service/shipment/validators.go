package shipment

import (
	"strings"

	"freight/internal/entities"
)

func isValidShipmentID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidServiceType(serviceType entities.ServiceTypeType) bool {
	switch serviceType {
	case entities.ServiceOBC, entities.ServiceNFO:
		return true
	default:
		return false
	}
}

func isValidDocumentState(state entities.DocumentStateType) bool {
	switch state {
	case entities.DocumentMissing, entities.DocumentPending, entities.DocumentComplete:
		return true
	default:
		return false
	}
}
