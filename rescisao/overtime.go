package rescisao

import "github.com/shopspring/decimal"

// =============================================================================
// OVERTIME AVERAGE AND REFLEXES ("média de horas extras" / "reflexos")
// =============================================================================

// AverageOvertime is the arithmetic mean of the overtime amounts, or zero
// for an empty history.
func AverageOvertime(history []OvertimeRecord) decimal.Decimal {
	if len(history) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, rec := range history {
		sum = sum.Add(rec.Amount)
	}
	return sum.Div(decimal.NewFromInt(int64(len(history))))
}

// OvertimeReflex is the effect of habitual overtime on the thirteenth salary
// and on vacation.
type OvertimeReflex struct {
	Thirteenth decimal.Decimal
	Vacation   decimal.Decimal // includes the one-third bonus
}

// OvertimeReflexes prorates the overtime average linearly over the whole
// tenure: (average/12) * elapsedMonths for the thirteenth, the same plus one
// third for vacation.
//
// This is deliberately not VacationMonths/ThirteenthMonths: the reflex uses
// total elapsed months with no 14-day rule, and existing results depend on it.
func OvertimeReflexes(average decimal.Decimal, elapsedMonths int) OvertimeReflex {
	if !average.IsPositive() {
		return OvertimeReflex{Thirteenth: decimal.Zero, Vacation: decimal.Zero}
	}
	prorated := twelfths(average, elapsedMonths)
	return OvertimeReflex{
		Thirteenth: prorated,
		Vacation:   withVacationBonus(prorated),
	}
}
