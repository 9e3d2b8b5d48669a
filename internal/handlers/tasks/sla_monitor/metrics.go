package sla_monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	slaShipmentsOnTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sla_open_shipments_on_time",
			Help: "Open shipments inside their SLA deadline at the last sweep",
		},
	)

	slaShipmentsWarning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sla_open_shipments_warning",
			Help: "Open shipments inside the warning window at the last sweep",
		},
	)

	slaShipmentsOverdue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sla_open_shipments_overdue",
			Help: "Open shipments past their SLA deadline at the last sweep",
		},
	)
)
