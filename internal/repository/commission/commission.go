package commission

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/commission"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const commissionColumns = `id, shipment_id, type, rate, base_amount, commission_amount, status, created_at, paid_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, commissionModifyEntity entities.CommissionModify) (*entities.Commission, error) {
	commissionModifyModel := FromDomainModify(&commissionModifyEntity)

	// уникальный индекс по shipment_id: одна комиссия на перевозку
	query := `
		INSERT INTO commissions (shipment_id, type, rate, base_amount, commission_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + commissionColumns

	var commissionModel CommissionDB
	err := r.querier.QueryRow(
		ctx,
		query,
		commissionModifyModel.ShipmentID,
		commissionModifyModel.Type,
		commissionModifyModel.Rate,
		commissionModifyModel.BaseAmount,
		commissionModifyModel.CommissionAmount,
		commissionModifyModel.Status,
	).Scan(scanTargets(&commissionModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, commission.ErrConflict
		}
		return nil, fmt.Errorf("unexpected commission repository create error: %w", err)
	}

	return ToDomain(&commissionModel), nil
}

func (r *Repository) GetByShipmentID(ctx context.Context, shipmentID string) (*entities.Commission, error) {
	query := `SELECT ` + commissionColumns + `
		FROM commissions
		WHERE shipment_id = $1`

	var commissionModel CommissionDB
	err := r.querier.QueryRow(ctx, query, shipmentID).Scan(scanTargets(&commissionModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, commission.ErrCommissionNotFound
		}

		return nil, fmt.Errorf("unexpected commission repository getbyshipmentid error: %w", err)
	}

	return ToDomain(&commissionModel), nil
}

func (r *Repository) Update(ctx context.Context, commissionModifyEntity entities.CommissionModify) (*entities.Commission, error) {
	commissionModifyModel := FromDomainModify(&commissionModifyEntity)
	if commissionModifyModel.ID == nil {
		return nil, commission.ErrCommissionNotFound
	}

	builder := qb.
		Update("commissions")

	// опционнные поля
	if commissionModifyModel.Rate != nil {
		builder = builder.Set("rate", commissionModifyModel.Rate)
	}
	if commissionModifyModel.BaseAmount != nil {
		builder = builder.Set("base_amount", commissionModifyModel.BaseAmount)
	}
	if commissionModifyModel.CommissionAmount != nil {
		builder = builder.Set("commission_amount", commissionModifyModel.CommissionAmount)
	}
	if commissionModifyModel.Status != nil {
		builder = builder.Set("status", commissionModifyModel.Status)
	}
	if commissionModifyModel.PaidAt != nil {
		builder = builder.Set("paid_at", commissionModifyModel.PaidAt)
	}

	builder = builder.
		Where(sq.Eq{"id": commissionModifyModel.ID}).
		Suffix("RETURNING " + commissionColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected commission repository update error: %w", err)
	}

	var commissionModel CommissionDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&commissionModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, commission.ErrCommissionNotFound
		}

		return nil, fmt.Errorf("unexpected commission repository update error: %w", err)
	}

	return ToDomain(&commissionModel), nil
}

func scanTargets(c *CommissionDB) []interface{} {
	return []interface{}{
		&c.ID,
		&c.ShipmentID,
		&c.Type,
		&c.Rate,
		&c.BaseAmount,
		&c.CommissionAmount,
		&c.Status,
		&c.CreatedAt,
		&c.PaidAt,
	}
}
