/*
Package rescisao computes Brazilian labor-termination settlements.

PURPOSE:
  Given salary, admission and termination dates, termination reason, notice
  type, disability status and overtime history, produce the itemized
  settlement ("verbas rescisórias") owed to the employee.

KEY CONCEPTS IN THIS FILE (types.go):
  - Reason: closed set of termination reasons (drives FGTS penalty and
    disability indemnity eligibility)
  - NoticeType: how the notice period is settled
  - Request: a validated, typed settlement request
  - Settlement: the itemized, rounded result

DESIGN PRINCIPLES:
  1. Purity: no I/O, no shared state; every call is independent
  2. Precision: decimal.Decimal end to end, rounding only when reporting
  3. Closed enums: unknown tags map to an explicit default arm

PIPELINE (calculator.go):
  parse -> balance, overtime average, vacation, thirteenth -> tenure and
  overtime reflexes -> disability -> notice -> FGTS penalty -> round each
  item -> sum rounded items

SEE ALSO:
  - input.go: JSON request shape and parsing
  - calculator.go: orchestration
  - calendar/: date arithmetic
*/
package rescisao

import (
	"github.com/shopspring/decimal"
	"github.com/warp/rescisao/calendar"
)

// =============================================================================
// TERMINATION REASON
// =============================================================================

// Reason is the termination reason. Its string value is the wire tag.
type Reason string

const (
	ReasonVoluntaryResignation  Reason = "pedido-demissao"
	ReasonDismissalWithoutCause Reason = "demissao-sem-justa-causa"
	ReasonIndirectDismissal     Reason = "rescisao-indireta"
	ReasonMutualFault           Reason = "culpa-reciproca"
	ReasonDismissalWithCause    Reason = "demissao-com-justa-causa"
	ReasonContractExpiration    Reason = "termino-contrato"

	// ReasonOther stands for any tag outside the known set.
	ReasonOther Reason = "outro"
)

var knownReasons = []Reason{
	ReasonDismissalWithoutCause,
	ReasonVoluntaryResignation,
	ReasonIndirectDismissal,
	ReasonMutualFault,
	ReasonDismissalWithCause,
	ReasonContractExpiration,
}

// ParseReason maps a wire tag to a Reason. Unrecognized tags (including the
// empty string) become ReasonOther; this is never an error.
func ParseReason(tag string) Reason {
	for _, r := range knownReasons {
		if string(r) == tag {
			return r
		}
	}
	return ReasonOther
}

// FGTSPenaltyRate is the share of the accumulated FGTS balance owed as a
// penalty for this reason.
func (r Reason) FGTSPenaltyRate() decimal.Decimal {
	switch r {
	case ReasonDismissalWithoutCause, ReasonIndirectDismissal, ReasonContractExpiration:
		return decimal.RequireFromString("0.40")
	case ReasonMutualFault:
		return decimal.RequireFromString("0.20")
	case ReasonVoluntaryResignation, ReasonDismissalWithCause:
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

// DisabilityIndemnityEligible reports whether a disabled employee terminated
// for this reason is owed the extra indemnity.
func (r Reason) DisabilityIndemnityEligible() bool {
	return r == ReasonDismissalWithoutCause || r == ReasonIndirectDismissal
}

// Label is the Portuguese description shown to users.
func (r Reason) Label() string {
	switch r {
	case ReasonVoluntaryResignation:
		return "Pedido de demissão"
	case ReasonDismissalWithoutCause:
		return "Demissão sem justa causa"
	case ReasonIndirectDismissal:
		return "Rescisão indireta"
	case ReasonMutualFault:
		return "Culpa recíproca"
	case ReasonDismissalWithCause:
		return "Demissão por justa causa"
	case ReasonContractExpiration:
		return "Término de contrato"
	default:
		return "Outro motivo"
	}
}

// =============================================================================
// NOTICE TYPE
// =============================================================================

// NoticeType is how the notice period ("aviso prévio") is settled.
type NoticeType string

const (
	NoticeIndemnified NoticeType = "indenizado"
	NoticeWorked      NoticeType = "trabalhado"

	// Any other tag is treated as a reduced notice paid at half value.
	NoticeOther NoticeType = "outro"
)

// DefaultNoticeType applies when the request omits the notice type or sends
// it as null. The original service only defaulted an absent key and paid an
// explicit null at half value, as NoticeOther.
const DefaultNoticeType = NoticeIndemnified

// ParseNoticeType maps a wire tag to a NoticeType; unknown tags become NoticeOther.
func ParseNoticeType(tag string) NoticeType {
	switch NoticeType(tag) {
	case NoticeIndemnified, NoticeWorked:
		return NoticeType(tag)
	default:
		return NoticeOther
	}
}

// Label is the Portuguese description shown to users.
func (n NoticeType) Label() string {
	switch n {
	case NoticeIndemnified:
		return "Indenizado"
	case NoticeWorked:
		return "Trabalhado"
	default:
		return "Reduzido (metade do valor)"
	}
}

// =============================================================================
// REQUEST
// =============================================================================

// OvertimeRecord is one month of overtime history.
type OvertimeRecord struct {
	Month    int // 1-12, 0 when not informed
	Quantity decimal.Decimal
	Amount   decimal.Decimal
}

// Request is a fully parsed settlement request.
type Request struct {
	Salary          decimal.Decimal
	AdmissionDate   calendar.Date
	TerminationDate calendar.Date
	Reason          Reason
	NoticeType      NoticeType
	Disabled        bool
	Overtime        []OvertimeRecord
}

// =============================================================================
// SETTLEMENT - Itemized result
// =============================================================================

// Line item names as they appear in the output mapping.
const (
	ItemBalanceOfSalary     = "saldo_salario"
	ItemVacation            = "ferias_proporcionais"
	ItemThirteenth          = "decimo_terceiro"
	ItemNotice              = "aviso_previo"
	ItemFGTSPenalty         = "multa_fgts"
	ItemOvertimeAverage     = "media_horas_extras"
	ItemDisabilityIndemnity = "indenizacao_pcd"
	ItemTotal               = "total_geral"
)

// LineItem is a named, rounded amount.
type LineItem struct {
	Name   string
	Amount decimal.Decimal
}

// Items holds every settlement amount, each rounded to 2 decimal places.
type Items struct {
	BalanceOfSalary decimal.Decimal
	Vacation        decimal.Decimal
	Thirteenth      decimal.Decimal
	Notice          decimal.Decimal
	FGTSPenalty     decimal.Decimal
	OvertimeAverage decimal.Decimal

	// DisabilityIndemnity is nil when nothing is owed.
	DisabilityIndemnity *decimal.Decimal

	// Total is the sum of the rounded line items above.
	Total decimal.Decimal
}

// Lines returns the present line items in output order, without the total.
func (it Items) Lines() []LineItem {
	lines := []LineItem{
		{ItemBalanceOfSalary, it.BalanceOfSalary},
		{ItemVacation, it.Vacation},
		{ItemThirteenth, it.Thirteenth},
		{ItemNotice, it.Notice},
		{ItemFGTSPenalty, it.FGTSPenalty},
		{ItemOvertimeAverage, it.OvertimeAverage},
	}
	if it.DisabilityIndemnity != nil {
		lines = append(lines, LineItem{ItemDisabilityIndemnity, *it.DisabilityIndemnity})
	}
	return lines
}

// Details carries auxiliary figures reported alongside the items.
type Details struct {
	ElapsedMonths  int // calendar months between admission and termination
	TerminationDay int // day of month of the termination date
}

// Settlement is a successful calculation. It is never mutated after
// Calculate returns it.
type Settlement struct {
	Items   Items
	Details Details
}

// Outcome is what the orchestrator returns: either a Settlement or the error
// that rejected the input. Exactly one of Settlement/Err is set.
type Outcome struct {
	Settlement *Settlement
	Err        error
}

// Succeeded reports whether the calculation produced a settlement.
func (o Outcome) Succeeded() bool { return o.Err == nil && o.Settlement != nil }
