package rescisao

import "github.com/shopspring/decimal"

// fgtsDepositRate is the monthly FGTS deposit as a share of salary.
var fgtsDepositRate = decimal.RequireFromString("0.08")

// =============================================================================
// FGTS PENALTY ("multa do FGTS")
// =============================================================================

// FGTSPenalty is the termination penalty over the accumulated FGTS balance:
// salary * 8% * elapsedMonths * rate(reason).
//
// The caller passes the salary base; the settlement uses base salary plus
// the overtime average.
func FGTSPenalty(salary decimal.Decimal, elapsedMonths int, reason Reason) decimal.Decimal {
	fund := salary.Mul(fgtsDepositRate).Mul(decimal.NewFromInt(int64(elapsedMonths)))
	return fund.Mul(reason.FGTSPenaltyRate())
}

// =============================================================================
// DISABILITY INDEMNITY ("indenização PCD")
// =============================================================================

// DisabilityIndemnity is one salary per full year worked, minimum one salary,
// for eligible reasons only. The caller decides whether the employee is
// disabled.
func DisabilityIndemnity(salary decimal.Decimal, fullYears int, reason Reason) decimal.Decimal {
	if !reason.DisabilityIndemnityEligible() {
		return decimal.Zero
	}
	return salary.Mul(decimal.NewFromInt(int64(max(1, fullYears))))
}

// =============================================================================
// NOTICE PERIOD ("aviso prévio")
// =============================================================================

const (
	noticeDaysPerYear  = 3
	maxExtraNoticeDays = 60
)

// NoticeDays is the notice length: 30 days plus 3 per full year, at most 90.
func NoticeDays(fullYears int) int {
	extra := min(maxExtraNoticeDays, max(0, fullYears)*noticeDaysPerYear)
	return 30 + extra
}

// NoticePay values the notice period. Indemnified notice pays
// salary * NoticeDays/30, worked notice pays nothing in cash, and any other
// notice type pays half of the indemnified value.
func NoticePay(salary decimal.Decimal, notice NoticeType, fullYears int) decimal.Decimal {
	full := salary.Mul(decimal.NewFromInt(int64(NoticeDays(fullYears)))).Div(thirty)

	switch notice {
	case NoticeIndemnified:
		return full
	case NoticeWorked:
		return decimal.Zero
	default:
		return full.Div(decimal.NewFromInt(2))
	}
}
