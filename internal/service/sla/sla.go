package sla

import (
	"time"

	"freight/internal/entities"
)

const DefaultWarningThreshold = 24 * time.Hour

// Config — явная конфигурация оценщика вместо неявных глобальных констант.
type Config struct {
	WarningThreshold time.Duration
}

type Evaluator struct {
	warningThreshold time.Duration
}

func New(cfg Config) *Evaluator {
	threshold := cfg.WarningThreshold
	if threshold <= 0 {
		threshold = DefaultWarningThreshold
	}

	return &Evaluator{
		warningThreshold: threshold,
	}
}

// Evaluate классифицирует дедлайн. Без побочных эффектов: повторный вызов
// с теми же аргументами даёт тот же результат.
//
// Для статусов, в которых доставка фактически завершена (delivered, invoiced,
// cancelled), классификация бинарная и замораживается: вызывающий передаёт
// как now момент перехода в этот статус, а не текущее время.
func (e *Evaluator) Evaluate(deadline time.Time, status entities.ShipmentStatusType, now time.Time) entities.SLAEvaluation {
	if isFrozen(status) {
		if now.After(deadline) {
			return entities.SLAEvaluation{Status: entities.SLAOverdue}
		}
		return entities.SLAEvaluation{Status: entities.SLAOnTime}
	}

	if now.After(deadline) {
		return entities.SLAEvaluation{Status: entities.SLAOverdue}
	}

	remaining := ceilHours(deadline.Sub(now))
	if remaining <= 0 {
		// дедлайн ровно сейчас: остаток исчерпан, но просрочки ещё нет
		return entities.SLAEvaluation{Status: entities.SLAWarning}
	}

	evaluation := entities.SLAEvaluation{
		Status:         entities.SLAOnTime,
		RemainingHours: &remaining,
	}
	if time.Duration(remaining)*time.Hour <= e.warningThreshold {
		evaluation.Status = entities.SLAWarning
	}
	return evaluation
}

// OverdueHours возвращает, на сколько часов пройден дедлайн.
// Для ещё не просроченных перевозок — 0.
func OverdueHours(deadline, now time.Time) int64 {
	if !now.After(deadline) {
		return 0
	}
	return ceilHours(now.Sub(deadline))
}

// isFrozen: доставка уже состоялась, дедлайн больше не "идёт".
// Фаза document следует за delivered, поэтому тоже заморожена.
func isFrozen(status entities.ShipmentStatusType) bool {
	return status == entities.ShipmentDelivered ||
		status == entities.ShipmentDocument ||
		status.IsTerminal()
}

func ceilHours(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64((d + time.Hour - 1) / time.Hour)
}
