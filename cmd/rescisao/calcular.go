package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/warp/rescisao/api"
	"github.com/warp/rescisao/rescisao"
)

// errCalculationFailed makes the process exit non-zero after the failure
// JSON has been printed.
var errCalculationFailed = errors.New("calculation failed")

func init() {
	rootCmd.AddCommand(calcularCmd)
	calcularCmd.Flags().StringP("file", "f", "", "Request JSON file (default: stdin)")
}

var calcularCmd = &cobra.Command{
	Use:   "calcular",
	Short: "Calculate a settlement from a JSON request",
	Long: `Reads one request in the same JSON format accepted by POST /api/calcular
and prints the result. Exits with status 1 when the request is rejected.`,
	Args: cobra.NoArgs,
	RunE: runCalcular,
}

func runCalcular(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")

	var (
		data []byte
		err  error
	)
	if file == "" || file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	resp := api.NewCalculationResponse(rescisao.CalculateJSON(data))

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if !resp.Success {
		return errCalculationFailed
	}
	return nil
}
