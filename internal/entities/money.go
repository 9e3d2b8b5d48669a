package entities

import (
	"fmt"
	"math"
)

// Money — денежная сумма в минорных единицах (центах).
// Целочисленная арифметика, чтобы расчёты комиссий не накапливали
// двоичную погрешность.
type Money int64

// MoneyFromFloat переводит сумму в основных единицах в Money,
// округляя до цента (half-up, симметрично для отрицательных).
func MoneyFromFloat(amount float64) Money {
	return Money(int64(math.Round(amount * 100)))
}

// Float возвращает сумму в основных единицах для сериализации наружу.
func (m Money) Float() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", int64(m)/100, abs(int64(m)%100))
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
