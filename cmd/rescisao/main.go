/*
main.go - Application entry point

PURPOSE:
  Command-line entry for the settlement calculator.

COMMANDS:
  serve      Start the HTTP API (graceful shutdown on SIGINT/SIGTERM)
  calcular   Calculate one request from a file or stdin and print JSON

CONFIGURATION:
  serve reads an optional TOML file (--config), then .env, then the
  environment (PORT, RESCISAO_STATIC_DIR, RESCISAO_CORS_ORIGINS).
  --port overrides everything.

EXAMPLES:
  ./rescisao serve --config ./rescisao.toml
  PORT=8080 ./rescisao serve
  ./rescisao calcular -f pedido.json
  echo '{"salario": 3000, ...}' | ./rescisao calcular

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Configuration sources
*/
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rescisao",
	Short: "Calculadora de rescisão trabalhista",
	Long: `Calculates Brazilian labor-termination settlements (verbas rescisórias):
balance of salary, proportional vacation and thirteenth salary, notice period,
FGTS penalty, overtime reflexes and disability indemnity.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
