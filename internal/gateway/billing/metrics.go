package billing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	billingSignalsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "billing_ready_signals_sent_total",
			Help: "Billing-ready signals delivered to the billing topic",
		},
	)

	billingSignalsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "billing_ready_signals_failed_total",
			Help: "Billing-ready signals that could not be delivered",
		},
	)
)
