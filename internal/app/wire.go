//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight/internal/gateway/billing"
	"freight/internal/handlers/tasks/sla_monitor"
	"freight/internal/pkg/config"

	commissionRepo "freight/internal/repository/commission"
	shipmentRepo "freight/internal/repository/shipment"
	commissionService "freight/internal/service/commission"
	"freight/internal/service/documents"
	shipmentService "freight/internal/service/shipment"
	"freight/internal/service/sla"
	"freight/internal/service/transition"

	"freight/pkg/logger"
	"freight/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMonitorInterval,

		provideShipmentRepository,
		provideCommissionRepository,

		transition.New,
		documents.New,
		provideSLAEvaluator,
		provideBillingGateway,

		provideServiceShipment,
		commissionService.NewCalculator,
		provideServiceCommission,

		provideSLAMonitorTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceCommission), new(*commissionService.Commission)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.BillingGateway), new(*billing.Gateway)),
		wire.Bind(new(shipmentService.TransitionValidator), new(*transition.Validator)),
		wire.Bind(new(shipmentService.DocumentGate), new(*documents.Gate)),
		wire.Bind(new(shipmentService.SLAEvaluator), new(*sla.Evaluator)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(commissionService.Repository), new(*commissionRepo.Repository)),

		wire.Bind(new(sla_monitor.Service), new(*shipmentService.Shipment)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shipment-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideShipmentRepository,

		transition.New,
		documents.New,
		provideSLAEvaluator,
		provideBillingGateway,

		provideServiceShipment,
		providePayloadFactory,

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.BillingGateway), new(*billing.Gateway)),
		wire.Bind(new(shipmentService.TransitionValidator), new(*transition.Validator)),
		wire.Bind(new(shipmentService.DocumentGate), new(*documents.Gate)),
		wire.Bind(new(shipmentService.SLAEvaluator), new(*sla.Evaluator)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
