/*
Package calendar provides the date arithmetic shared by the settlement formulas.

PURPOSE:
  Labor-law formulas work on calendar dates, never on instants. This package
  wraps time.Time at day granularity and implements the two different ways
  the formulas measure time:

  - Calendar-aware differences (Diff, ElapsedMonths, FullYears): whole
    years/months between two dates, where adding a month to Jan 31 lands
    on the last day of February rather than overflowing into March.
  - The 30-day conventional month (WorkedDaysInFinalMonth): partial-month
    proration ignores the real length of the month.

INVERTED RANGES:
  When the start date is after the end date, Diff returns negative
  components. ElapsedMonths and FullYears clamp to zero so tenure-based
  formulas never produce negative amounts.

SEE ALSO:
  - span.go: Diff and the tenure helpers
  - rescisao/: the formulas built on top of these helpers
*/
package calendar

import (
	"fmt"
	"time"
)

// Layout is the wire format for dates (YYYY-MM-DD).
const Layout = "2006-01-02"

// ConventionalMonthDays is the fixed month length used for proration.
const ConventionalMonthDays = 30

// =============================================================================
// DATE - Day-granularity calendar date
// =============================================================================

// Date is a calendar date without time of day. The zero value is
// January 1, year 1.
type Date struct {
	t time.Time
}

// New builds a date. Out-of-range values normalize the way time.Date does.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates t to its calendar date in t's own location.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns the current date in the local time zone.
func Today() Date {
	return FromTime(time.Now())
}

// Parse reads a YYYY-MM-DD date.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("data inválida %q (use AAAA-MM-DD): %w", s, err)
	}
	return FromTime(t), nil
}

// MustParse is Parse for literals in tests and fixtures. It panics on error.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Properties
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) Time() time.Time   { return d.t }
func (d Date) IsZero() bool      { return d.t.IsZero() }
func (d Date) String() string    { return d.t.Format(Layout) }

// Comparison
func (d Date) Before(other Date) bool       { return d.t.Before(other.t) }
func (d Date) After(other Date) bool        { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool        { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }

// SameMonth reports whether both dates fall in the same calendar month and year.
func (d Date) SameMonth(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

// AddDays moves the date by n days.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// AddMonths moves the date by n calendar months. When the target month is
// shorter than the current day, the day is clamped to the month's last day
// (Jan 31 + 1 month = Feb 28/29), unlike time.Time.AddDate which overflows.
func (d Date) AddMonths(n int) Date {
	total := int(d.Month()) - 1 + n
	year := d.Year() + floorDiv(total, 12)
	month := time.Month(total-floorDiv(total, 12)*12 + 1)
	day := d.Day()
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return New(year, month, day)
}

// AddYears moves the date by n years with the same clamping as AddMonths
// (Feb 29 + 1 year = Feb 28).
func (d Date) AddYears(n int) Date { return d.AddMonths(12 * n) }

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween returns the signed number of days from -> to.
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// =============================================================================
// TEXT ENCODING - lets Date appear directly in JSON/TOML documents
// =============================================================================

// MarshalText renders the date as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses YYYY-MM-DD.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
