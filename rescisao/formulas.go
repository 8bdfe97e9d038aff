package rescisao

import (
	"github.com/shopspring/decimal"
	"github.com/warp/rescisao/calendar"
)

var (
	three  = decimal.NewFromInt(3)
	twelve = decimal.NewFromInt(12)
	thirty = decimal.NewFromInt(calendar.ConventionalMonthDays)
)

// twelfths returns (value/12) * months, multiplying first to keep precision.
func twelfths(value decimal.Decimal, months int) decimal.Decimal {
	return value.Mul(decimal.NewFromInt(int64(months))).Div(twelve)
}

// withVacationBonus adds the constitutional one-third bonus.
func withVacationBonus(base decimal.Decimal) decimal.Decimal {
	return base.Add(base.Div(three))
}

// =============================================================================
// BALANCE OF SALARY ("saldo de salário")
// =============================================================================

// BalanceOfSalary is the pay for the days worked in the final month:
// (salary / 30) * worked days.
func BalanceOfSalary(salary decimal.Decimal, admission, termination calendar.Date) decimal.Decimal {
	days := calendar.WorkedDaysInFinalMonth(admission, termination)
	return salary.Mul(decimal.NewFromInt(int64(days))).Div(thirty)
}

// =============================================================================
// PROPORTIONAL VACATION ("férias proporcionais + 1/3")
// =============================================================================

// VacationMonths counts the months accrued in the current, incomplete
// acquisition period (the 12 months since the last admission anniversary).
// A trailing fraction of more than 14 days counts as a full month.
func VacationMonths(admission, termination calendar.Date) int {
	if admission.After(termination) {
		return 0
	}

	periodStart := admission.AddYears(calendar.Diff(admission, termination).Years)
	current := calendar.Diff(periodStart, termination)

	months := current.Months
	if current.Days > 14 {
		months++
	}
	return months
}

// ProportionalVacation is (salary/12) * VacationMonths plus one third.
func ProportionalVacation(salary decimal.Decimal, admission, termination calendar.Date) decimal.Decimal {
	return withVacationBonus(twelfths(salary, VacationMonths(admission, termination)))
}

// =============================================================================
// PROPORTIONAL THIRTEENTH SALARY ("13º proporcional")
// =============================================================================

// ThirteenthMonths counts the calendar months worked in the termination year,
// clamped to [0, 12]. Unlike VacationMonths there is no day-fraction rule.
func ThirteenthMonths(admission, termination calendar.Date) int {
	var months int
	switch {
	case admission.After(termination):
		months = 0
	case admission.Year() == termination.Year():
		months = int(termination.Month()) - int(admission.Month()) + 1
	default:
		months = int(termination.Month())
	}
	return max(0, min(months, 12))
}

// ProportionalThirteenth is (salary/12) * ThirteenthMonths.
func ProportionalThirteenth(salary decimal.Decimal, admission, termination calendar.Date) decimal.Decimal {
	return twelfths(salary, ThirteenthMonths(admission, termination))
}
