/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. The calculation
  response keeps the historical Portuguese field names so existing clients
  keep working:

    success: {"sucesso": true, "verbas": {...}, "detalhes": {...}}
    failure: {"sucesso": false, "erro": "..."}

  Requests are decoded straight into rescisao.Input; see rescisao/input.go.

MONEY:
  The engine works in decimal.Decimal and rounds to cents. DTOs carry
  float64 so amounts serialize as JSON numbers; every value is already
  rounded when converted.

SEE ALSO:
  - handlers.go: Uses these types
  - rescisao/types.go: Domain result types
*/
package api

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/warp/rescisao/rescisao"
)

// =============================================================================
// CALCULATION
// =============================================================================

// CalculationResponse is the result of POST /api/calcular.
type CalculationResponse struct {
	Success bool        `json:"sucesso"`
	Items   *ItemsDTO   `json:"verbas,omitempty"`
	Details *DetailsDTO `json:"detalhes,omitempty"`
	Error   string      `json:"erro,omitempty"`
}

// ItemsDTO is the itemized settlement.
type ItemsDTO struct {
	BalanceOfSalary     float64  `json:"saldo_salario"`
	Vacation            float64  `json:"ferias_proporcionais"`
	Thirteenth          float64  `json:"decimo_terceiro"`
	Notice              float64  `json:"aviso_previo"`
	FGTSPenalty         float64  `json:"multa_fgts"`
	OvertimeAverage     float64  `json:"media_horas_extras"`
	DisabilityIndemnity *float64 `json:"indenizacao_pcd,omitempty"`
	Total               float64  `json:"total_geral"`
}

// DetailsDTO carries auxiliary figures.
type DetailsDTO struct {
	ElapsedMonths  int `json:"meses_trabalhados"`
	TerminationDay int `json:"dias_trabalhados_mes"`
}

// msgNoData is the wire message for a body without a JSON object.
const msgNoData = "Dados não fornecidos"

// NewCalculationResponse converts an engine outcome to its wire shape.
func NewCalculationResponse(out rescisao.Outcome) CalculationResponse {
	if !out.Succeeded() {
		msg := "erro desconhecido"
		switch {
		case errors.Is(out.Err, rescisao.ErrNoData):
			msg = msgNoData
		case out.Err != nil:
			msg = out.Err.Error()
		}
		return CalculationResponse{Success: false, Error: msg}
	}

	it := out.Settlement.Items
	items := &ItemsDTO{
		BalanceOfSalary: toFloat(it.BalanceOfSalary),
		Vacation:        toFloat(it.Vacation),
		Thirteenth:      toFloat(it.Thirteenth),
		Notice:          toFloat(it.Notice),
		FGTSPenalty:     toFloat(it.FGTSPenalty),
		OvertimeAverage: toFloat(it.OvertimeAverage),
		Total:           toFloat(it.Total),
	}
	if it.DisabilityIndemnity != nil {
		v := toFloat(*it.DisabilityIndemnity)
		items.DisabilityIndemnity = &v
	}

	return CalculationResponse{
		Success: true,
		Items:   items,
		Details: &DetailsDTO{
			ElapsedMonths:  out.Settlement.Details.ElapsedMonths,
			TerminationDay: out.Settlement.Details.TerminationDay,
		},
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationResponse is the result of POST /api/validar.
type ValidationResponse struct {
	Valid    bool         `json:"valido"`
	Errors   []string     `json:"erros"`
	Problems []ProblemDTO `json:"problemas,omitempty"`
}

// ProblemDTO is one advisory finding.
type ProblemDTO struct {
	Code    string `json:"codigo"`
	Message string `json:"mensagem"`
}

// =============================================================================
// CATALOG
// =============================================================================

// CatalogResponse is the result of GET /api/motivos.
type CatalogResponse struct {
	Reasons []ReasonDTO `json:"motivos"`
	Notices []NoticeDTO `json:"avisos"`
}

// ReasonDTO describes a termination reason.
type ReasonDTO struct {
	Code                string  `json:"codigo"`
	Label               string  `json:"descricao"`
	FGTSPenaltyRate     float64 `json:"multa_fgts_percentual"`
	DisabilityIndemnity bool    `json:"indenizacao_pcd"`
}

// NoticeDTO describes a notice type.
type NoticeDTO struct {
	Code    string `json:"codigo"`
	Label   string `json:"descricao"`
	Default bool   `json:"padrao"`
}

func newCatalogResponse() CatalogResponse {
	reasons := rescisao.Reasons()
	resp := CatalogResponse{
		Reasons: make([]ReasonDTO, len(reasons)),
	}
	for i, r := range reasons {
		resp.Reasons[i] = ReasonDTO{
			Code:                string(r.Reason),
			Label:               r.Label,
			FGTSPenaltyRate:     toFloat(r.FGTSPenaltyRate),
			DisabilityIndemnity: r.DisabilityIndemnity,
		}
	}
	for _, n := range rescisao.NoticeTypes() {
		resp.Notices = append(resp.Notices, NoticeDTO{
			Code:    string(n.NoticeType),
			Label:   n.Label,
			Default: n.Default,
		})
	}
	return resp
}

// =============================================================================
// COMMON
// =============================================================================

// StatusResponse is returned by GET / and GET /health.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the error body for non-calculation failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
