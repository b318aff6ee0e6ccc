// Package finance computes the installment breakdown shown on every bike
// page. Pure arithmetic, recomputed on each request.
package finance

import "math"

// Breakdown is the installment figure set for one price/term combination.
// All amounts are whole rupees, rounded to nearest.
type Breakdown struct {
	DownPayment       int `json:"downPayment"`
	FinancedPrincipal int `json:"financedPrincipal"`
	MonthlyPayment    int `json:"monthlyPayment"`
}

// Compute derives the breakdown from price, down payment percent, term in
// months and annual rate percent using the standard amortization formula.
// A zero rate or degenerate term falls back to straight-line division so
// the function stays total (no division by zero, no error path).
func Compute(price int, downPct float64, months int, aprPct float64) Breakdown {
	downPayment := int(math.Round(float64(price) * downPct / 100))
	financed := price - downPayment

	monthlyRate := aprPct / 100 / 12

	var monthly int
	if months > 0 && monthlyRate > 0 {
		monthly = int(math.Round(
			float64(financed) * monthlyRate / (1 - math.Pow(1+monthlyRate, float64(-months)))))
	} else {
		divisor := months
		if divisor < 1 {
			divisor = 1
		}
		monthly = int(math.Round(float64(financed) / float64(divisor)))
	}

	return Breakdown{
		DownPayment:       downPayment,
		FinancedPrincipal: financed,
		MonthlyPayment:    monthly,
	}
}
