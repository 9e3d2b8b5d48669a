package commission

import (
	"math"

	"freight/internal/entities"
)

// Calculator считает сумму комиссии в минорных единицах.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate возвращает сумму комиссии.
// Для percentage: round2(base * rate / 100), округление half-up.
// Для fixed поле rate перегружено и трактуется как сама сумма.
func (c *Calculator) Calculate(baseAmount entities.Money, rate float64, commissionType entities.CommissionTypeType) (entities.Money, error) {
	if baseAmount <= 0 {
		return 0, ErrInvalidBaseAmount
	}

	switch commissionType {
	case entities.CommissionPercentage:
		if rate < 0 || rate > 100 {
			return 0, ErrInvalidRate
		}
		return percentageOf(baseAmount, rate), nil
	case entities.CommissionFixed:
		if rate < 0 {
			return 0, ErrInvalidRate
		}
		return entities.MoneyFromFloat(rate), nil
	default:
		return 0, ErrInvalidCommissionType
	}
}

// percentageOf выполняет расчёт целиком в целых числах: ставка переводится
// в сотые доли процента, чтобы base*rate/100 не проходил через float.
func percentageOf(base entities.Money, rate float64) entities.Money {
	rateHundredths := int64(math.Round(rate * 100))
	return entities.Money((int64(base)*rateHundredths + 5000) / 10000)
}
