package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/rescisao/api"
)

func runCalc(t *testing.T, stdin string, args ...string) (api.CalculationResponse, error) {
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"calcular"}, args...))
	t.Cleanup(func() {
		calcularCmd.Flags().Set("file", "")
	})

	err := rootCmd.Execute()

	var resp api.CalculationResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp), out.String())
	return resp, err
}

func TestCalcular_Stdin(t *testing.T) {
	resp, err := runCalc(t, `{"salario": 3000, "data_admissao": "2023-10-15", "data_demissao": "2023-10-25", "motivo": "pedido-demissao"}`)
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.InDelta(t, 1100.0, resp.Items.BalanceOfSalary, 0.001)
}

func TestCalcular_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pedido.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"salario": 2400, "data_admissao": "2023-01-01", "data_demissao": "2023-12-31",
		"motivo": "termino-contrato", "aviso_previo": "trabalhado"
	}`), 0o600))

	resp, err := runCalc(t, "", "-f", path)
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.InDelta(t, 2400.0, resp.Items.Thirteenth, 0.001)
	assert.Zero(t, resp.Items.Notice)
}

func TestCalcular_FailureExitsNonZero(t *testing.T) {
	resp, err := runCalc(t, `{"salario": 3000}`)
	assert.ErrorIs(t, err, errCalculationFailed)
	assert.False(t, resp.Success)
	assert.Equal(t, "data_admissao: campo obrigatório", resp.Error)
}
