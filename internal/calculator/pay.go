// Package calculator computes overtime pay.
package calculator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/mmynk/overtime/internal/models"
)

const (
	// ShiftEndHour is the end of the regular shift; overtime starts here.
	ShiftEndHour = 19

	// MaxEndHour is the latest accepted end hour, 23:00 of the following day.
	MaxEndHour = 47

	// TierBreakMinutes is where the premium rate starts (2 overtime hours).
	TierBreakMinutes = 120

	// daysPerMonth × hoursPerDay × minutesPerHour converts monthly salary to a per-minute rate.
	minutesPerSalary = 30 * 8 * 60
)

var (
	baseMultiplier    = decimal.RequireFromString("1.34")
	premiumMultiplier = decimal.RequireFromString("1.67")
	salaryDivisor     = decimal.NewFromInt(minutesPerSalary)
)

// OvertimeHours returns the elapsed time past ShiftEndHour in hours.
func OvertimeHours(endHour, minutes int) float64 {
	return float64(endHour-ShiftEndHour) + float64(minutes)/60
}

// ComputePay returns the pay for a session ending at endHour:minutes for the
// given monthly salary, rounded half-up to the nearest currency unit.
//
// With h the overtime in hours and r = salary/30/8 the hourly rate:
//
//	h <= 2: pay = r × h × 1.34
//	h >  2: pay = r × 2 × 1.34 + r × (h-2) × 1.67
//
// The evaluation happens in whole minutes with a single final division so the
// result does not depend on float representation of h.
func ComputePay(monthlySalary float64, endHour, minutes int) (int64, error) {
	if err := Validate(monthlySalary, endHour, minutes); err != nil {
		return 0, err
	}

	overtime := int64((endHour-ShiftEndHour)*60 + minutes)
	if overtime <= 0 {
		return 0, nil
	}

	base := min(overtime, TierBreakMinutes)
	excess := max(overtime-TierBreakMinutes, 0)

	weighted := decimal.NewFromInt(base).Mul(baseMultiplier).
		Add(decimal.NewFromInt(excess).Mul(premiumMultiplier))

	pay := decimal.NewFromFloat(monthlySalary).Mul(weighted).Div(salaryDivisor).Round(0)
	return pay.IntPart(), nil
}

// Validate checks the calculator's input domain.
func Validate(monthlySalary float64, endHour, minutes int) error {
	if math.IsNaN(monthlySalary) || math.IsInf(monthlySalary, 0) {
		return fmt.Errorf("%w: salary must be a finite number", models.ErrInvalidInput)
	}
	if monthlySalary < 0 {
		return fmt.Errorf("%w: salary must not be negative", models.ErrInvalidInput)
	}
	if endHour < ShiftEndHour || endHour > MaxEndHour {
		return fmt.Errorf("%w: end hour must be between %d and %d", models.ErrInvalidInput, ShiftEndHour, MaxEndHour)
	}
	if minutes < 0 || minutes > 59 {
		return fmt.Errorf("%w: minutes must be between 0 and 59", models.ErrInvalidInput)
	}
	return nil
}
