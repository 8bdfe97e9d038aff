package calendar

// =============================================================================
// SPAN - Calendar-aware difference between two dates
// =============================================================================

// Span is a calendar difference: from.AddMonths(Years*12 + Months).AddDays(Days)
// equals the end date. All components share the sign of the difference.
type Span struct {
	Years  int
	Months int
	Days   int
}

// TotalMonths returns Years*12 + Months.
func (s Span) TotalMonths() int { return s.Years*12 + s.Months }

// Diff computes the calendar difference from -> to.
//
// The month count is the largest number of whole months that can be added to
// from (with end-of-month clamping) without passing to; the remainder is
// expressed in days. Example: 2023-01-31 -> 2023-03-01 is 1 month and 1 day
// (Jan 31 + 1 month = Feb 28, then one more day).
func Diff(from, to Date) Span {
	months := (to.Year()-from.Year())*12 + int(to.Month()-from.Month())
	shifted := from.AddMonths(months)

	if to.Before(from) {
		for to.After(shifted) {
			months++
			shifted = from.AddMonths(months)
		}
	} else {
		for to.Before(shifted) {
			months--
			shifted = from.AddMonths(months)
		}
	}

	return Span{
		Years:  months / 12,
		Months: months % 12,
		Days:   DaysBetween(shifted, to),
	}
}

// ElapsedMonths is the whole-month tenure between admission and termination
// (years*12 + months of the calendar difference). Inverted ranges yield 0.
func ElapsedMonths(admission, termination Date) int {
	if admission.After(termination) {
		return 0
	}
	return Diff(admission, termination).TotalMonths()
}

// FullYears is the whole-year tenure between admission and termination,
// floor-truncated. Inverted ranges yield 0.
func FullYears(admission, termination Date) int {
	if admission.After(termination) {
		return 0
	}
	return Diff(admission, termination).Years
}

// WorkedDaysInFinalMonth counts the days worked in the termination month
// using the 30-day conventional month.
//
// When admission and termination share the month, counting starts at the
// admission day: clamp(termination.day - admission.day + 1, 0, 30).
// Otherwise the whole month up to the termination day counts: min(day, 30).
func WorkedDaysInFinalMonth(admission, termination Date) int {
	if admission.SameMonth(termination) {
		days := termination.Day() - admission.Day() + 1
		return max(0, min(days, ConventionalMonthDays))
	}
	return min(termination.Day(), ConventionalMonthDays)
}
