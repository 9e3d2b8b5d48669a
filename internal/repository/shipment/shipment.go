package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, status, service_type, sla_deadline,
	doc_awb, doc_hawb, doc_mawb, doc_pod,
	customer_reference, cancellation_reason, pod_signature,
	completed_at, status_changed_at, version, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)

	// id и version генерирует база: gen_random_uuid() и DEFAULT 1
	query := `
		INSERT INTO shipments (status, service_type, sla_deadline, customer_reference, status_changed_at)
		VALUES ($1, $2, $3, COALESCE($4, ''), $5)
		RETURNING ` + shipmentColumns

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyModel.Status,
		shipmentModifyModel.ServiceType,
		shipmentModifyModel.SLADeadline,
		shipmentModifyModel.CustomerReference,
		shipmentModifyModel.StatusChangedAt,
	).Scan(scanTargets(&shipmentModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1`

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&shipmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

// Update применяет изменения через compare-and-swap по колонке version.
// Несовпадение версии при живой строке означает гонку записей.
func (r *Repository) Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify, expectedVersion int64) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)
	if shipmentModifyModel.ID == nil {
		return nil, shipment.ErrInvalidShipmentID
	}

	builder := qb.
		Update("shipments")

	// опционнные поля
	if shipmentModifyModel.Status != nil {
		builder = builder.Set("status", shipmentModifyModel.Status)
	}
	if shipmentModifyModel.SLADeadline != nil {
		builder = builder.Set("sla_deadline", shipmentModifyModel.SLADeadline)
	}
	if shipmentModifyModel.CustomerReference != nil {
		builder = builder.Set("customer_reference", shipmentModifyModel.CustomerReference)
	}
	if shipmentModifyModel.CancellationReason != nil {
		builder = builder.Set("cancellation_reason", shipmentModifyModel.CancellationReason)
	}
	if shipmentModifyModel.PODSignature != nil {
		builder = builder.Set("pod_signature", shipmentModifyModel.PODSignature)
	}
	if shipmentModifyModel.CompletedAt != nil {
		builder = builder.Set("completed_at", shipmentModifyModel.CompletedAt)
	}
	if shipmentModifyModel.StatusChangedAt != nil {
		builder = builder.Set("status_changed_at", shipmentModifyModel.StatusChangedAt)
	}
	if shipmentModifyModel.DocAWB != nil {
		builder = builder.Set("doc_awb", shipmentModifyModel.DocAWB)
	}
	if shipmentModifyModel.DocHAWB != nil {
		builder = builder.Set("doc_hawb", shipmentModifyModel.DocHAWB)
	}
	if shipmentModifyModel.DocMAWB != nil {
		builder = builder.Set("doc_mawb", shipmentModifyModel.DocMAWB)
	}
	if shipmentModifyModel.DocPOD != nil {
		builder = builder.Set("doc_pod", shipmentModifyModel.DocPOD)
	}

	builder = builder.
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": shipmentModifyModel.ID, "version": expectedVersion}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var shipmentModel ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&shipmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissingRow(ctx, *shipmentModifyModel.ID)
		}

		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

// classifyMissingRow различает отсутствующую строку и проигранную гонку версий.
func (r *Repository) classifyMissingRow(ctx context.Context, id string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM shipments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	if exists {
		return shipment.ErrStaleWrite
	}
	return shipment.ErrShipmentNotFound
}

// GetOpenShipments возвращает перевозки, дедлайн которых ещё живёт
// по настенным часам: всё до delivered.
func (r *Repository) GetOpenShipments(ctx context.Context) ([]entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE status IN ('quoted', 'booked', 'pickup', 'in_transit')
		ORDER BY sla_deadline`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getopenshipments error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		var shipmentModel ShipmentDB
		if err := rows.Scan(scanTargets(&shipmentModel)...); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getopenshipments error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getopenshipments error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

func scanTargets(s *ShipmentDB) []interface{} {
	return []interface{}{
		&s.ID,
		&s.Status,
		&s.ServiceType,
		&s.SLADeadline,
		&s.DocAWB,
		&s.DocHAWB,
		&s.DocMAWB,
		&s.DocPOD,
		&s.CustomerReference,
		&s.CancellationReason,
		&s.PODSignature,
		&s.CompletedAt,
		&s.StatusChangedAt,
		&s.Version,
		&s.CreatedAt,
		&s.UpdatedAt,
	}
}
