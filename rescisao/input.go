package rescisao

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/warp/rescisao/calendar"
)

// =============================================================================
// INPUT - Wire shape of a settlement request
// =============================================================================

// Input is the JSON request as received. Pointer fields distinguish an absent
// key from a zero value; Parse turns it into a Request.
//
// Required: salario, data_admissao, data_demissao, motivo.
// Optional (default): aviso_previo ("indenizado"), is_pcd (false),
// horas_extras (empty).
//
// salario, quantidade and valor accept either a JSON number or a numeric
// string, bounded by maxAmount and the exponent range below.
type Input struct {
	Salary          *decimal.Decimal `json:"salario"`
	AdmissionDate   *string          `json:"data_admissao"`
	TerminationDate *string          `json:"data_demissao"`
	Reason          *string          `json:"motivo"`
	NoticeType      *string          `json:"aviso_previo,omitempty"`
	Disabled        *bool            `json:"is_pcd,omitempty"`
	Overtime        []OvertimeInput  `json:"horas_extras,omitempty"`
}

// OvertimeInput is one entry of horas_extras.
type OvertimeInput struct {
	Month    *int             `json:"mes,omitempty"`
	Quantity *decimal.Decimal `json:"quantidade"`
	Amount   *decimal.Decimal `json:"valor"`
}

// Amount bounds. decimal accepts any exponent, and arithmetic on one far from
// zero expands the coefficient; values past maxAmount do not fit a float64
// response either.
const (
	minExponent = -10
	maxExponent = 15
)

var maxAmount = decimal.New(1, 12)

// DecodeInput decodes a JSON request body.
//
// It returns ErrNoData when the body is not a non-empty JSON object, and an
// *InputError when the object is well formed but a field has the wrong type.
func DecodeInput(data []byte) (Input, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || len(fields) == 0 {
		return Input{}, ErrNoData
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return Input{}, &InputError{Field: typeErr.Field, Err: fmt.Errorf("tipo inválido (%s)", typeErr.Value)}
		}
		return Input{}, &InputError{Err: err}
	}

	// An explicit null motivo is an unrecognized reason, not a missing one.
	if raw, ok := fields["motivo"]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		empty := ""
		in.Reason = &empty
	}
	return in, nil
}

// Parse validates the input and builds a Request. Fields are checked in a
// fixed order (salary, dates, reason, then optional fields) and the first
// problem is returned as an *InputError.
func (in Input) Parse() (Request, error) {
	var req Request

	if in.Salary == nil {
		return Request{}, missing("salario")
	}
	if err := checkAmount("salario", *in.Salary); err != nil {
		return Request{}, err
	}
	req.Salary = *in.Salary

	var err error
	if req.AdmissionDate, err = parseDate("data_admissao", in.AdmissionDate); err != nil {
		return Request{}, err
	}
	if req.TerminationDate, err = parseDate("data_demissao", in.TerminationDate); err != nil {
		return Request{}, err
	}

	if in.Reason == nil {
		return Request{}, missing("motivo")
	}
	req.Reason = ParseReason(*in.Reason)

	req.NoticeType = DefaultNoticeType
	if in.NoticeType != nil {
		req.NoticeType = ParseNoticeType(*in.NoticeType)
	}

	if in.Disabled != nil {
		req.Disabled = *in.Disabled
	}

	req.Overtime = make([]OvertimeRecord, 0, len(in.Overtime))
	for i, ot := range in.Overtime {
		rec, err := ot.parse(fmt.Sprintf("horas_extras[%d]", i))
		if err != nil {
			return Request{}, err
		}
		req.Overtime = append(req.Overtime, rec)
	}

	return req, nil
}

func (ot OvertimeInput) parse(field string) (OvertimeRecord, error) {
	if ot.Quantity == nil {
		return OvertimeRecord{}, missing(field + ".quantidade")
	}
	if ot.Amount == nil {
		return OvertimeRecord{}, missing(field + ".valor")
	}
	if err := checkAmount(field+".quantidade", *ot.Quantity); err != nil {
		return OvertimeRecord{}, err
	}
	if err := checkAmount(field+".valor", *ot.Amount); err != nil {
		return OvertimeRecord{}, err
	}

	rec := OvertimeRecord{Quantity: *ot.Quantity, Amount: *ot.Amount}
	if ot.Month != nil {
		rec.Month = *ot.Month
	}
	return rec, nil
}

// checkAmount must run before any arithmetic on d. The exponent is checked
// first so the comparison with maxAmount stays cheap.
func checkAmount(field string, d decimal.Decimal) error {
	if exp := d.Exponent(); exp < minExponent || exp > maxExponent {
		return invalid(field, "valor fora do intervalo aceito")
	}
	if d.IsNegative() {
		return invalid(field, "valor negativo %s", d.String())
	}
	if d.GreaterThan(maxAmount) {
		return invalid(field, "valor acima do limite %s", maxAmount.String())
	}
	return nil
}

func parseDate(field string, s *string) (calendar.Date, error) {
	if s == nil {
		return calendar.Date{}, missing(field)
	}
	d, err := calendar.Parse(*s)
	if err != nil {
		return calendar.Date{}, &InputError{Field: field, Err: err}
	}
	return d, nil
}
