package shipment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"freight/internal/entities"
	"freight/internal/service/documents"
	"freight/pkg/logger"
)

type Shipment struct {
	repository          Repository
	billingGateway      BillingGateway
	transitionValidator TransitionValidator
	documentGate        DocumentGate
	slaEvaluator        SLAEvaluator
	txManager           TxManager
	log                 serviceLogger
}

func New(
	repository Repository,
	billingGateway BillingGateway,
	transitionValidator TransitionValidator,
	documentGate DocumentGate,
	slaEvaluator SLAEvaluator,
	txManager TxManager,
	log serviceLogger,
) *Shipment {
	return &Shipment{
		repository:          repository,
		billingGateway:      billingGateway,
		transitionValidator: transitionValidator,
		documentGate:        documentGate,
		slaEvaluator:        slaEvaluator,
		txManager:           txManager,
		log:                 log,
	}
}

// View — снапшот перевозки вместе с текущей SLA-классификацией
// и комплектностью документов.
type View struct {
	Shipment  *entities.Shipment
	SLA       entities.SLAEvaluation
	Documents documents.Evaluation
}

// SLASweep — итог периодического обхода открытых перевозок.
type SLASweep struct {
	OnTime  int64
	Warning int64
	Overdue int64
}

func (s *Shipment) CreateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	if shipmentModify.ServiceType == nil || shipmentModify.SLADeadline == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidServiceType(*shipmentModify.ServiceType) {
		return nil, ErrInvalidServiceType
	}
	if shipmentModify.SLADeadline.IsZero() {
		return nil, ErrInvalidDeadline
	}

	// перевозка всегда рождается в quoted, что бы ни прислал вызывающий
	initialStatus := entities.ShipmentQuoted
	now := time.Now().UTC()
	shipmentModify.Status = &initialStatus
	shipmentModify.StatusChangedAt = &now

	created, err := s.repository.Create(ctx, shipmentModify)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	return created, nil
}

func (s *Shipment) GetShipment(ctx context.Context, id string) (*View, error) {
	if !isValidShipmentID(id) {
		return nil, ErrInvalidShipmentID
	}

	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	return s.buildView(found), nil
}

// ChangeStatus проводит перевозку по графу статусов. Payload несёт данные,
// обязательные для конкретного перехода: причину отмены, подтверждение POD.
func (s *Shipment) ChangeStatus(ctx context.Context, id string, proposed entities.ShipmentStatusType, payload entities.StatusPayload) (*entities.Shipment, error) {
	if !isValidShipmentID(id) {
		return nil, ErrInvalidShipmentID
	}
	if proposed == entities.ShipmentDocument {
		return nil, ErrCompletionRequired
	}

	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if current.Status.IsTerminal() {
			return fmt.Errorf("%w: status is %s", ErrShipmentClosed, current.Status)
		}

		if err := s.transitionValidator.AssertTransition(current.Status, proposed); err != nil {
			return err
		}

		now := time.Now().UTC()
		shipmentModify := entities.ShipmentModify{
			ID:              &current.ID,
			Status:          &proposed,
			StatusChangedAt: &now,
		}

		switch proposed {
		case entities.ShipmentCancelled:
			cancelledPayload, ok := payload.(entities.CancelledPayload)
			if !ok || strings.TrimSpace(cancelledPayload.Reason) == "" {
				return ErrMissingCancellationReason
			}
			shipmentModify.CancellationReason = &cancelledPayload.Reason

		case entities.ShipmentDelivered:
			deliveredPayload, ok := payload.(entities.DeliveredPayload)
			if !ok || !deliveredPayload.PODConfirmed {
				return ErrPODNotConfirmed
			}
			// completed_at ставится ровно один раз — в момент доставки
			shipmentModify.CompletedAt = &now
			if deliveredPayload.Signature != "" {
				shipmentModify.PODSignature = &deliveredPayload.Signature
			}
		}

		updated, err = s.repository.Update(ctx, shipmentModify, current.Version)
		if err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ReviseDeadline пересматривает SLA-дедлайн активной перевозки.
// После терминального статуса дедлайн неизменяем.
func (s *Shipment) ReviseDeadline(ctx context.Context, id string, deadline time.Time) (*entities.Shipment, error) {
	if !isValidShipmentID(id) {
		return nil, ErrInvalidShipmentID
	}
	if deadline.IsZero() {
		return nil, ErrInvalidDeadline
	}

	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if current.Status.IsTerminal() {
			return fmt.Errorf("%w: status is %s", ErrShipmentClosed, current.Status)
		}

		updated, err = s.repository.Update(ctx, entities.ShipmentModify{ID: &current.ID, SLADeadline: &deadline}, current.Version)
		if err != nil {
			return fmt.Errorf("revise deadline: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateDocuments обновляет документные слоты и клиентскую ссылку,
// возвращая свежую оценку комплектности. Для активных перевозок гейт
// чисто информационный.
func (s *Shipment) UpdateDocuments(ctx context.Context, id string, docs entities.DocumentStatusModify, customerReference *string) (*View, error) {
	if !isValidShipmentID(id) {
		return nil, ErrInvalidShipmentID
	}
	if docs.AWB == nil && docs.HAWB == nil && docs.MAWB == nil && docs.POD == nil && customerReference == nil {
		return nil, fmt.Errorf("nothing to update: %w", ErrMissingRequiredFields)
	}
	for _, state := range []*entities.DocumentStateType{docs.AWB, docs.HAWB, docs.MAWB, docs.POD} {
		if state != nil && !isValidDocumentState(*state) {
			return nil, ErrInvalidDocumentState
		}
	}
	if customerReference != nil && strings.TrimSpace(*customerReference) == "" {
		return nil, fmt.Errorf("customer reference must not be blank: %w", ErrMissingRequiredFields)
	}

	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if current.Status.IsTerminal() {
			return fmt.Errorf("%w: status is %s", ErrShipmentClosed, current.Status)
		}

		shipmentModify := entities.ShipmentModify{ID: &current.ID, CustomerReference: customerReference}
		if docs.AWB != nil || docs.HAWB != nil || docs.MAWB != nil || docs.POD != nil {
			shipmentModify.Documents = &docs
		}

		updated, err = s.repository.Update(ctx, shipmentModify, current.Version)
		if err != nil {
			return fmt.Errorf("update documents: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.buildView(updated), nil
}

// AttemptCompletion — переход delivered -> document, единственная операция
// с внешне наблюдаемым эффектом: сигналом биллингу. Предпосылки проверяются
// все разом, без короткого замыкания, чтобы UI получил полный чеклист.
func (s *Shipment) AttemptCompletion(ctx context.Context, id string, confirmations entities.Confirmations) (*entities.CompletionResult, error) {
	if !isValidShipmentID(id) {
		return nil, ErrInvalidShipmentID
	}

	var result *entities.CompletionResult
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		reasons := s.collectBlockers(current, confirmations)
		if len(reasons) > 0 {
			return &CompletionBlockedError{Reasons: reasons}
		}

		documentStatus := entities.ShipmentDocument
		if err := s.transitionValidator.AssertTransition(current.Status, documentStatus); err != nil {
			return err
		}

		now := time.Now().UTC()
		updated, err := s.repository.Update(ctx, entities.ShipmentModify{
			ID:              &current.ID,
			Status:          &documentStatus,
			StatusChangedAt: &now,
		}, current.Version)
		if err != nil {
			return fmt.Errorf("complete shipment: %w", err)
		}

		completedAt := now
		if updated.CompletedAt != nil {
			completedAt = *updated.CompletedAt
		}

		result = &entities.CompletionResult{
			Shipment: updated,
			Event: entities.BillingReadyEvent{
				ShipmentID:  updated.ID,
				CompletedAt: completedAt,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сигнал биллингу уходит после фиксации перехода. Отказ канала не
	// откатывает статус — его разбирают операторы по логу и метрике шлюза.
	if err := s.billingGateway.NotifyBillingReady(ctx, result.Event); err != nil {
		s.log.With(
			logger.NewField("shipment", result.Event.ShipmentID),
			logger.NewField("error", err),
		).Error("billing-ready signal delivery failed, manual follow-up required")
	}

	return result, nil
}

// EvaluateOpenDeadlines классифицирует дедлайны всех открытых перевозок.
// Используется фоновой задачей SLA-монитора.
func (s *Shipment) EvaluateOpenDeadlines(ctx context.Context) (*SLASweep, error) {
	open, err := s.repository.GetOpenShipments(ctx)
	if err != nil {
		return nil, fmt.Errorf("get open shipments: %w", err)
	}

	now := time.Now().UTC()
	sweep := &SLASweep{}

	for i := range open {
		evaluation := s.slaEvaluator.Evaluate(open[i].SLADeadline, open[i].Status, now)
		switch evaluation.Status {
		case entities.SLAOnTime:
			sweep.OnTime++
		case entities.SLAWarning:
			sweep.Warning++
		case entities.SLAOverdue:
			sweep.Overdue++
			s.log.With(
				logger.NewField("shipment", open[i].ID),
				logger.NewField("status", open[i].Status.String()),
				logger.NewField("deadline", open[i].SLADeadline),
			).Warn("shipment deadline overdue")
		}
	}

	return sweep, nil
}

func (s *Shipment) collectBlockers(current *entities.Shipment, confirmations entities.Confirmations) []entities.BlockingReason {
	reasons := make([]entities.BlockingReason, 0, 4)

	if current.Status != entities.ShipmentDelivered {
		reasons = append(reasons, entities.BlockingReason{
			Field:   "current_status",
			Message: "shipment is not in a completable state",
		})
	}

	if strings.TrimSpace(current.CustomerReference) == "" {
		reasons = append(reasons, entities.BlockingReason{
			Field:   "customer_reference",
			Message: "customer reference is required",
		})
	}

	evaluation := s.documentGate.Evaluate(current.Documents, current.ServiceType)
	for _, name := range evaluation.Missing {
		// awb участвует в проценте комплектности, но завершение не блокирует
		if name == entities.DocAWB {
			continue
		}
		reasons = append(reasons, entities.BlockingReason{
			Field:   "documents." + name.String(),
			Message: name.String() + " must be complete",
		})
	}

	if !confirmations.ExtraCostsRecorded {
		reasons = append(reasons, entities.BlockingReason{
			Field:   "confirmations.extra_costs_recorded",
			Message: "extra costs must be recorded",
		})
	}
	if !confirmations.DocumentsComplete {
		reasons = append(reasons, entities.BlockingReason{
			Field:   "confirmations.documents_complete",
			Message: "documents completeness must be confirmed",
		})
	}
	if current.ServiceType == entities.ServiceNFO && !confirmations.CWTValidated {
		reasons = append(reasons, entities.BlockingReason{
			Field:   "confirmations.cwt_validated",
			Message: "chargeable weight pre-alert must be validated",
		})
	}

	return reasons
}

func (s *Shipment) buildView(found *entities.Shipment) *View {
	// после доставки классификация заморожена: оцениваем момент доставки
	// (или перехода в терминальный статус), а не текущее время
	evaluationInstant := time.Now().UTC()
	switch {
	case found.CompletedAt != nil:
		evaluationInstant = *found.CompletedAt
	case found.Status.IsTerminal():
		evaluationInstant = found.StatusChangedAt
	}

	return &View{
		Shipment:  found,
		SLA:       s.slaEvaluator.Evaluate(found.SLADeadline, found.Status, evaluationInstant),
		Documents: s.documentGate.Evaluate(found.Documents, found.ServiceType),
	}
}
