package sla_monitor

import (
	"context"
	"time"

	shipmentservice "freight/internal/service/shipment"
	"freight/pkg/logger"
)

type Service interface {
	EvaluateOpenDeadlines(ctx context.Context) (*shipmentservice.SLASweep, error)
}

type SLAMonitor struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewSLAMonitor(log logger.Logger, service Service, interval time.Duration) *SLAMonitor {
	return &SLAMonitor{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (m *SLAMonitor) TTL() time.Duration {
	return m.interval
}

func (m *SLAMonitor) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	sweep, err := m.service.EvaluateOpenDeadlines(ctxWithTimeout)
	if err != nil {
		return err
	}

	slaShipmentsOnTime.Set(float64(sweep.OnTime))
	slaShipmentsWarning.Set(float64(sweep.Warning))
	slaShipmentsOverdue.Set(float64(sweep.Overdue))

	if sweep.Overdue > 0 {
		m.log.With(
			logger.NewField("overdue", sweep.Overdue),
			logger.NewField("warning", sweep.Warning),
			logger.NewField("on_time", sweep.OnTime),
		).Warn("sla monitor sweep found overdue shipments")
	}

	return nil
}

func (m *SLAMonitor) Info() string {
	return "sla monitor"
}
