package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight/internal/gateway/billing"
	"freight/internal/handlers/tasks/sla_monitor"
	"freight/internal/pkg/config"
	"freight/internal/pkg/factory/status_handle"

	commissionRepo "freight/internal/repository/commission"
	shipmentRepo "freight/internal/repository/shipment"
	commissionService "freight/internal/service/commission"
	shipmentService "freight/internal/service/shipment"
	"freight/internal/service/sla"

	"freight/pkg/background"
	"freight/pkg/logger"
	"freight/pkg/querier"
	"freight/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideCommissionRepository(querier *querier.Querier) *commissionRepo.Repository {
	return commissionRepo.New(querier)
}

func provideSLAEvaluator(cfg *config.Config) *sla.Evaluator {
	return sla.New(sla.Config{
		WarningThreshold: cfg.SLA.WarningThreshold,
	})
}

func provideBillingGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *billing.Gateway {
	return billing.New(log, producer, cfg.Kafka.BillingTopic)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	billingGateway shipmentService.BillingGateway,
	transitionValidator shipmentService.TransitionValidator,
	documentGate shipmentService.DocumentGate,
	slaEvaluator shipmentService.SLAEvaluator,
	txManager shipmentService.TxManager,
	log logger.Logger,
) *shipmentService.Shipment {
	return shipmentService.New(
		repository,
		billingGateway,
		transitionValidator,
		documentGate,
		slaEvaluator,
		txManager,
		log,
	)
}

func provideServiceCommission(
	repository commissionService.Repository,
	calculator *commissionService.Calculator,
) *commissionService.Commission {
	return commissionService.New(repository, calculator)
}

func providePayloadFactory() *status_handle.PayloadFactory {
	return status_handle.NewPayloadFactory()
}

func provideMonitorInterval(cfg *config.Config) MonitorInterval {
	return MonitorInterval(cfg.Tasks.SLAMonitorInterval)
}

func provideSLAMonitorTask(
	log logger.Logger,
	shipmentService sla_monitor.Service,
	interval MonitorInterval,
) *sla_monitor.SLAMonitor {
	return sla_monitor.NewSLAMonitor(log, shipmentService, time.Duration(interval))
}

func provideTaskList(
	slaMonitorTask *sla_monitor.SLAMonitor,
) []background.Task {
	return []background.Task{
		slaMonitorTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
