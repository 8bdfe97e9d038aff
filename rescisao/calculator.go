package rescisao

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/rescisao/calendar"
)

// reportPlaces is the number of decimal places of every reported amount.
const reportPlaces = 2

// CalculateJSON decodes a JSON request body and calculates it. Decoding
// failures become a failed Outcome like any other rejected input.
func CalculateJSON(data []byte) Outcome {
	in, err := DecodeInput(data)
	if err != nil {
		return Outcome{Err: err}
	}
	return Calculate(in)
}

// Calculate validates the input and computes the settlement. It never
// panics; every failure is reported through Outcome.Err and no partial
// settlement is returned.
func Calculate(in Input) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Err: &InputError{Err: fmt.Errorf("%v", r)}}
		}
	}()

	req, err := in.Parse()
	if err != nil {
		return Outcome{Err: err}
	}
	settlement := Compute(req)
	return Outcome{Settlement: &settlement}
}

// Compute runs the formula pipeline over an already parsed request.
func Compute(req Request) Settlement {
	adm, term := req.AdmissionDate, req.TerminationDate

	balance := BalanceOfSalary(req.Salary, adm, term)
	average := AverageOvertime(req.Overtime)
	vacation := ProportionalVacation(req.Salary, adm, term)
	thirteenth := ProportionalThirteenth(req.Salary, adm, term)

	elapsed := calendar.ElapsedMonths(adm, term)
	reflex := OvertimeReflexes(average, elapsed)

	disability := decimal.Zero
	if req.Disabled {
		disability = DisabilityIndemnity(req.Salary, calendar.FullYears(adm, term), req.Reason)
	}

	notice := NoticePay(req.Salary, req.NoticeType, calendar.FullYears(adm, term))

	// Overtime inflates the FGTS base.
	penalty := FGTSPenalty(req.Salary.Add(average), elapsed, req.Reason)

	items := Items{
		BalanceOfSalary: round(balance),
		Vacation:        round(vacation.Add(reflex.Vacation)),
		Thirteenth:      round(thirteenth.Add(reflex.Thirteenth)),
		Notice:          round(notice),
		FGTSPenalty:     round(penalty),
		OvertimeAverage: round(average),
	}
	if disability.IsPositive() {
		d := round(disability)
		items.DisabilityIndemnity = &d
	}

	// Items are rounded first and then summed; totals depend on this order.
	total := decimal.Zero
	for _, line := range items.Lines() {
		total = total.Add(line.Amount)
	}
	items.Total = round(total)

	return Settlement{
		Items: items,
		Details: Details{
			ElapsedMonths:  elapsed,
			TerminationDay: term.Day(),
		},
	}
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(reportPlaces)
}
