package entities

type SLAStatusType string

const (
	SLAOnTime  SLAStatusType = "on_time"
	SLAWarning SLAStatusType = "warning"
	SLAOverdue SLAStatusType = "overdue"
)

func (s SLAStatusType) String() string {
	return string(s)
}

// SLAEvaluation — классификация дедлайна на момент оценки.
// RemainingHours == nil, когда остаток часов уже не имеет смысла
// (дедлайн пройден или статус терминальный).
type SLAEvaluation struct {
	Status         SLAStatusType
	RemainingHours *int64
}
