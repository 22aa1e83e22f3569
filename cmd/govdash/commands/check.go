package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/govdash/internal/aggregate"
	"github.com/wonny/govdash/internal/detail"
	"github.com/wonny/govdash/internal/view"
)

// checkCmd validates configuration and dataset
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "설정 · 데이터셋 검증",
	Long: `Load the configuration and the dataset and print a summary.

Exits non-zero when a required column is missing or the config is invalid.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	t := a.table()
	out := cmd.OutOrStdout()
	schema := t.Schema()

	PrintHeader(out, "Dataset Check")
	PrintKeyValue(out, "Source", t.Source(), 18)
	PrintKeyValue(out, "Rows", fmt.Sprint(t.Len()), 18)
	PrintKeyValue(out, "Columns", fmt.Sprint(len(t.Columns())), 18)
	PrintKeyValue(out, "Benchmark", a.dash.Benchmark, 18)
	PrintKeyValue(out, "Governance years", strings.Join(schema.GovernanceYears, ", "), 18)
	PrintKeyValue(out, "Stock years", strings.Join(schema.StockYears, ", "), 18)
	PrintSeparator(out)

	fmt.Fprintln(out, "   Max governance score")
	maxScores := detail.MaxGovernanceScores(t, schema.GovernanceYears)
	for _, year := range schema.GovernanceYears {
		PrintKeyValue(out, year, view.Number(maxScores[year]), 18)
	}
	PrintSeparator(out)

	perf := aggregate.Aggregate(t.Records())
	if perf.Unclassified > 0 {
		PrintWarning(out, fmt.Sprintf("%d companies have no known average classification", perf.Unclassified))
	}
	PrintSuccess(out, fmt.Sprintf("dataset ok (%d companies)", t.Len()))
	return nil
}
