package rescisao

import (
	"fmt"

	"github.com/warp/rescisao/calendar"
)

// maxOvertimeRecords is the trailing window used for the overtime average.
const maxOvertimeRecords = 12

// Problem is an advisory finding about a request. Problems never block a
// calculation; they flag inputs that are probably a data-entry mistake.
type Problem struct {
	Code    string
	Message string
}

func (p Problem) Error() string { return p.Message }

// Problem codes.
const (
	ProblemNonPositiveSalary   = "salario_nao_positivo"
	ProblemInvertedDates       = "datas_invertidas"
	ProblemFutureTermination   = "demissao_futura"
	ProblemOvertimeAmount      = "horas_extras_valor"
	ProblemOvertimeQuantity    = "horas_extras_quantidade"
	ProblemDuplicateOvertime   = "horas_extras_mes_duplicado"
	ProblemTooManyOvertimeRows = "horas_extras_excesso"
)

// Check returns every advisory problem found in req, in a stable order.
// today anchors the "termination in the future" rule.
func Check(req Request, today calendar.Date) []Problem {
	var problems []Problem
	add := func(code, format string, args ...any) {
		problems = append(problems, Problem{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if !req.Salary.IsPositive() {
		add(ProblemNonPositiveSalary, "O salário deve ser maior que zero")
	}
	if req.AdmissionDate.After(req.TerminationDate) {
		add(ProblemInvertedDates, "A data de admissão não pode ser posterior à data de demissão")
	}
	if req.TerminationDate.After(today) {
		add(ProblemFutureTermination, "A data de demissão não pode ser futura")
	}

	seen := make(map[int]bool, len(req.Overtime))
	duplicated := false
	for i, rec := range req.Overtime {
		if !rec.Amount.IsPositive() {
			add(ProblemOvertimeAmount, "horas_extras[%d]: o valor das horas extras deve ser maior que zero", i)
		}
		if !rec.Quantity.IsPositive() {
			add(ProblemOvertimeQuantity, "horas_extras[%d]: a quantidade de horas extras deve ser maior que zero", i)
		}
		if seen[rec.Month] {
			duplicated = true
		}
		seen[rec.Month] = true
	}
	if duplicated {
		add(ProblemDuplicateOvertime, "Não pode haver horas extras duplicadas para o mesmo mês")
	}
	if len(req.Overtime) > maxOvertimeRecords {
		add(ProblemTooManyOvertimeRows, "Informe no máximo %d meses de horas extras (recebidos %d)", maxOvertimeRecords, len(req.Overtime))
	}

	return problems
}
