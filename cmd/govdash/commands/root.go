package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	datasetPath   string
	dashboardFile string
	env           string
	verbose       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "govdash",
	Short: "거버넌스 · 주가 성과 대시보드",
	Long: `govdash: company governance and stock performance dashboard

NIFTY 100 거버넌스 분류와 주가 성과 데이터를 읽어
회사별 상세 화면과 산업별 성과 비율을 제공합니다.

Usage:
  go run ./cmd/govdash [command]

Examples:
  go run ./cmd/govdash serve
  go run ./cmd/govdash company "INFOSYS LTD." --pretty
  go run ./cmd/govdash industry --macro "Financial Services"
  go run ./cmd/govdash options sector --macro Energy
  go run ./cmd/govdash check`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "dataset file, .csv or .xlsx (overrides DATASET_PATH)")
	rootCmd.PersistentFlags().StringVar(&dashboardFile, "dashboard-config", "", "dashboard YAML (overrides DASHBOARD_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// applyGlobalFlags maps global flags onto the environment read by config.Load
func applyGlobalFlags(cmd *cobra.Command, args []string) error {
	overrides := map[string]string{
		"DATASET_PATH":     datasetPath,
		"DASHBOARD_CONFIG": dashboardFile,
		"ENV":              env,
	}
	if verbose {
		overrides["LOG_LEVEL"] = "debug"
	}

	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}
