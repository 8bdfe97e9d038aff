/*
handlers_test.go - HTTP tests for the calculator API

Tests for:
- Calculation contract (success, failure, 400 on missing data)
- Advisory validation endpoint
- Catalog, status and metrics endpoints
*/
package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/rescisao/calendar"
	"github.com/warp/rescisao/config"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	h := NewHandler(NewMetrics())
	h.Today = func() calendar.Date { return calendar.New(2024, 6, 1) }

	srv := httptest.NewServer(NewRouter(h, RouterOptions{
		CORS: config.DefaultConfig().CORS,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, []byte) {
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, []byte) {
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

const fullRequest = `{
	"salario": 3000,
	"data_admissao": "2020-01-01",
	"data_demissao": "2023-07-01",
	"motivo": "demissao-sem-justa-causa",
	"is_pcd": true,
	"horas_extras": [
		{"mes": 1, "quantidade": 10, "valor": 500},
		{"mes": 2, "quantidade": 15, "valor": 750},
		{"mes": 3, "quantidade": 5, "valor": 250}
	]
}`

// =============================================================================
// CALCULATION
// =============================================================================

func TestCalculate_Success(t *testing.T) {
	srv := newTestServer(t)

	resp, data := post(t, srv, "/api/calcular", fullRequest)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, true, out["sucesso"])

	verbas := out["verbas"].(map[string]any)
	assert.InDelta(t, 100.0, verbas["saldo_salario"], 0.001)
	assert.InDelta(t, 4333.33, verbas["ferias_proporcionais"], 0.001)
	assert.InDelta(t, 3500.0, verbas["decimo_terceiro"], 0.001)
	assert.InDelta(t, 3900.0, verbas["aviso_previo"], 0.001)
	assert.InDelta(t, 4704.0, verbas["multa_fgts"], 0.001)
	assert.InDelta(t, 500.0, verbas["media_horas_extras"], 0.001)
	assert.InDelta(t, 9000.0, verbas["indenizacao_pcd"], 0.001)
	assert.InDelta(t, 26037.33, verbas["total_geral"], 0.001)

	detalhes := out["detalhes"].(map[string]any)
	assert.EqualValues(t, 42, detalhes["meses_trabalhados"])
	assert.EqualValues(t, 1, detalhes["dias_trabalhados_mes"])

	_, metrics := get(t, srv, "/metrics")
	assert.Contains(t, string(metrics),
		`rescisao_calculations_total{motivo="demissao-sem-justa-causa",resultado="sucesso"} 1`)
}

func TestCalculate_OmitsDisabilityWhenNotOwed(t *testing.T) {
	srv := newTestServer(t)

	_, data := post(t, srv, "/api/calcular", `{
		"salario": 3000, "data_admissao": "2023-01-15", "data_demissao": "2023-10-10",
		"motivo": "pedido-demissao", "is_pcd": true
	}`)

	var out CalculationResponse
	require.NoError(t, json.Unmarshal(data, &out))
	require.True(t, out.Success)
	assert.Nil(t, out.Items.DisabilityIndemnity)
	assert.NotContains(t, string(data), "indenizacao_pcd")
}

func TestCalculate_InvalidFieldIsFailureWith200(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing salary", `{"data_admissao": "2023-01-01", "data_demissao": "2023-02-01", "motivo": "x"}`},
		{"bad date", `{"salario": 1000, "data_admissao": "01/01/2023", "data_demissao": "2023-02-01", "motivo": "x"}`},
		{"non numeric salary", `{"salario": "mil", "data_admissao": "2023-01-01", "data_demissao": "2023-02-01", "motivo": "x"}`},
		{"missing reason", `{"salario": 1000, "data_admissao": "2023-01-01", "data_demissao": "2023-02-01"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := post(t, srv, "/api/calcular", tt.body)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var out map[string]any
			require.NoError(t, json.Unmarshal(data, &out))
			assert.Equal(t, false, out["sucesso"])
			assert.NotEmpty(t, out["erro"])
			assert.NotContains(t, out, "verbas", "no partial result")
		})
	}

	// Unknown or missing reasons collapse into one label value
	_, metrics := get(t, srv, "/metrics")
	assert.Contains(t, string(metrics),
		`rescisao_calculations_total{motivo="outro",resultado="entrada_invalida"} 4`)
}

func TestCalculate_NoDataIs400(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{"", "{}", "null", "[1,2]", "{broken"} {
		resp, data := post(t, srv, "/api/calcular", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)

		var out CalculationResponse
		require.NoError(t, json.Unmarshal(data, &out))
		assert.False(t, out.Success)
		assert.Equal(t, "Dados não fornecidos", out.Error)
	}
}

func TestCalculate_OutOfRangeSalaryIsFailure(t *testing.T) {
	srv := newTestServer(t)

	resp, data := post(t, srv, "/api/calcular", `{
		"salario": "3000e400", "data_admissao": "2020-01-01", "data_demissao": "2023-07-01",
		"motivo": "demissao-sem-justa-causa"
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, data)

	var out CalculationResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "salario")
	assert.Nil(t, out.Items)
}

func TestCalculate_IdenticalRequestsIdenticalBytes(t *testing.T) {
	srv := newTestServer(t)

	_, first := post(t, srv, "/api/calcular", fullRequest)
	_, second := post(t, srv, "/api/calcular", fullRequest)
	assert.Equal(t, first, second)
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidate(t *testing.T) {
	srv := newTestServer(t)

	_, data := post(t, srv, "/api/validar", fullRequest)
	var ok ValidationResponse
	require.NoError(t, json.Unmarshal(data, &ok))
	assert.True(t, ok.Valid)
	assert.Empty(t, ok.Errors)

	_, data = post(t, srv, "/api/validar", `{
		"salario": 0, "data_admissao": "2024-05-01", "data_demissao": "2024-07-01", "motivo": "x"
	}`)
	var bad ValidationResponse
	require.NoError(t, json.Unmarshal(data, &bad))
	assert.False(t, bad.Valid)
	assert.Equal(t, []string{
		"O salário deve ser maior que zero",
		"A data de demissão não pode ser futura",
	}, bad.Errors)

	_, data = post(t, srv, "/api/validar", `{"salario": 1000}`)
	var unparsable ValidationResponse
	require.NoError(t, json.Unmarshal(data, &unparsable))
	assert.False(t, unparsable.Valid)
	assert.Equal(t, []string{"data_admissao: campo obrigatório"}, unparsable.Errors)
}

// =============================================================================
// CATALOG / STATUS / METRICS / STATIC
// =============================================================================

func TestListReasons(t *testing.T) {
	srv := newTestServer(t)

	resp, data := get(t, srv, "/api/motivos")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out CatalogResponse
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out.Reasons, 6)
	assert.Equal(t, "demissao-sem-justa-causa", out.Reasons[0].Code)
	assert.InDelta(t, 0.4, out.Reasons[0].FGTSPenaltyRate, 1e-9)
	require.Len(t, out.Notices, 2)
}

func TestHomeAndHealth(t *testing.T) {
	srv := newTestServer(t)

	_, data := get(t, srv, "/")
	var home StatusResponse
	require.NoError(t, json.Unmarshal(data, &home))
	assert.Equal(t, "online", home.Status)

	resp, _ := get(t, srv, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	post(t, srv, "/api/calcular", fullRequest)

	resp, data := get(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), "rescisao_calculations_total")
	assert.Contains(t, string(data), "rescisao_calculation_duration_seconds")
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))

	srv := httptest.NewServer(NewRouter(NewHandler(nil), RouterOptions{StaticDir: dir}))
	t.Cleanup(srv.Close)

	resp, data := get(t, srv, "/static/app.js")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "console.log(1)", string(data))

	// No metrics endpoint without metrics
	resp, _ = get(t, srv, "/metrics")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/calcular", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://frontend.example")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
