package app

import (
	"time"

	"freight/internal/handlers/rest/commission_get"
	"freight/internal/handlers/rest/commission_paid_put"
	"freight/internal/handlers/rest/commission_post"
	"freight/internal/handlers/rest/shipment_complete_post"
	"freight/internal/handlers/rest/shipment_deadline_put"
	"freight/internal/handlers/rest/shipment_documents_put"
	"freight/internal/handlers/rest/shipment_get"
	"freight/internal/handlers/rest/shipment_post"
	"freight/internal/handlers/rest/shipment_status_put"
	"freight/internal/pkg/factory/status_handle"
	shipmentService "freight/internal/service/shipment"
	"freight/pkg/background"
)

type (
	MonitorInterval time.Duration
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceCommission ServiceCommission
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_post.Service
	shipment_get.Service
	shipment_status_put.Service
	shipment_deadline_put.Service
	shipment_documents_put.Service
	shipment_complete_post.Service
}

type ServiceCommission interface {
	commission_post.Service
	commission_get.Service
	commission_paid_put.Service
}

type KafkaWorkerApp struct {
	ShipmentService *shipmentService.Shipment
	PayloadFactory  *status_handle.PayloadFactory
}
