package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/mmynk/overtime/internal/models"
)

func TestComputePay(t *testing.T) {
	tests := []struct {
		name    string
		salary  float64
		endHour int
		minutes int
		wantPay int64
		wantErr bool
	}{
		{name: "no overtime at shift end", salary: 5000, endHour: 19, minutes: 0, wantPay: 0},
		{name: "half hour", salary: 5000, endHour: 19, minutes: 30, wantPay: 14},
		{name: "one and a half hours", salary: 5000, endHour: 20, minutes: 30, wantPay: 42},
		{name: "exactly two hours", salary: 5000, endHour: 21, minutes: 0, wantPay: 56},
		{name: "three hours uses premium for the excess", salary: 5000, endHour: 22, minutes: 0, wantPay: 91},
		{name: "two hours thirty", salary: 4800, endHour: 21, minutes: 30, wantPay: 70},
		{name: "past midnight hour", salary: 7200, endHour: 24, minutes: 0, wantPay: 231},
		{name: "zero salary", salary: 0, endHour: 23, minutes: 15, wantPay: 0},
		{name: "negative salary", salary: -1, endHour: 20, minutes: 0, wantErr: true},
		{name: "end hour before shift end", salary: 5000, endHour: 18, minutes: 30, wantErr: true},
		{name: "latest end hour", salary: 2400, endHour: 47, minutes: 59, wantPay: 477},
		{name: "end hour past next day", salary: 5000, endHour: 48, minutes: 0, wantErr: true},
		{name: "huge end hour", salary: 5000, endHour: math.MaxInt, minutes: 0, wantErr: true},
		{name: "minutes above range", salary: 5000, endHour: 20, minutes: 60, wantErr: true},
		{name: "negative minutes", salary: 5000, endHour: 20, minutes: -1, wantErr: true},
		{name: "NaN salary", salary: math.NaN(), endHour: 20, minutes: 0, wantErr: true},
		{name: "infinite salary", salary: math.Inf(1), endHour: 20, minutes: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePay(tt.salary, tt.endHour, tt.minutes)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ComputePay() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if got != tt.wantPay {
				t.Errorf("ComputePay(%v, %d, %d) = %d, want %d", tt.salary, tt.endHour, tt.minutes, got, tt.wantPay)
			}
		})
	}
}

// referencePay evaluates the tiered formula in hours without rounding.
func referencePay(salary float64, endHour, minutes int) float64 {
	rate := salary / 30 / 8
	h := OvertimeHours(endHour, minutes)
	switch {
	case h <= 0:
		return 0
	case h <= 2:
		return rate * h * 1.34
	default:
		return rate*2*1.34 + rate*(h-2)*1.67
	}
}

func TestComputePay_MatchesFormula(t *testing.T) {
	for _, salary := range []float64{1234.5, 4800, 5000, 31000} {
		for endHour := 19; endHour <= 26; endHour++ {
			for minutes := 0; minutes < 60; minutes++ {
				got, err := ComputePay(salary, endHour, minutes)
				if err != nil {
					t.Fatalf("ComputePay(%v, %d, %d) failed: %v", salary, endHour, minutes, err)
				}
				want := referencePay(salary, endHour, minutes)
				if math.Abs(float64(got)-want) > 0.5+1e-9 {
					t.Errorf("ComputePay(%v, %d, %d) = %d, exact value %v", salary, endHour, minutes, got, want)
				}
			}
		}
	}
}

func TestComputePay_MonotonicAndContinuous(t *testing.T) {
	const salary = 1_000_000

	prev := int64(-1)
	for endHour := 19; endHour <= 27; endHour++ {
		for minutes := 0; minutes < 60; minutes++ {
			got, err := ComputePay(salary, endHour, minutes)
			if err != nil {
				t.Fatalf("ComputePay failed: %v", err)
			}
			if got < prev {
				t.Fatalf("pay decreased at %d:%02d: %d < %d", endHour, minutes, got, prev)
			}
			prev = got
		}
	}

	// One minute either side of the tier break differs by about one minute of pay.
	before, _ := ComputePay(salary, 20, 59)
	at, _ := ComputePay(salary, 21, 0)
	after, _ := ComputePay(salary, 21, 1)
	perMinute := float64(salary) / 30 / 8 / 60
	if d := float64(at - before); math.Abs(d-perMinute*1.34) > 1 {
		t.Errorf("jump below tier break = %v, want about %v", d, perMinute*1.34)
	}
	if d := float64(after - at); math.Abs(d-perMinute*1.67) > 1 {
		t.Errorf("jump above tier break = %v, want about %v", d, perMinute*1.67)
	}
}

func TestOvertimeHours(t *testing.T) {
	if got := OvertimeHours(20, 30); got != 1.5 {
		t.Errorf("OvertimeHours(20, 30) = %v, want 1.5", got)
	}
	if got := OvertimeHours(19, 0); got != 0 {
		t.Errorf("OvertimeHours(19, 0) = %v, want 0", got)
	}
}
