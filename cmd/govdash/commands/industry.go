package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/govdash/internal/aggregate"
	"github.com/wonny/govdash/internal/filter"
	"github.com/wonny/govdash/internal/report"
	"github.com/wonny/govdash/internal/view"
)

var (
	industrySel selectionFlags
	industryOut outputFlags
)

// industryCmd prints the industry performance page
var industryCmd = &cobra.Command{
	Use:   "industry",
	Short: "산업별 성과 비율 (분류별 Better/Worse)",
	Long: `Print the companies and outcome shares under a hierarchy selection.

A selection that no longer fits its parent is reset to All, the same
way the dashboard drop-downs behave.

Examples:
  go run ./cmd/govdash industry
  go run ./cmd/govdash industry --macro "Financial Services"
  go run ./cmd/govdash industry --sector "Information Technology" --json`,
	Args: cobra.NoArgs,
	RunE: runIndustry,
}

func init() {
	rootCmd.AddCommand(industryCmd)
	industrySel.register(industryCmd)
	industryOut.register(industryCmd)
}

func runIndustry(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	t := a.table()

	opts := filter.Cascade(t, industrySel.selection())
	rows := filter.Narrow(t, opts.Selection)
	page := view.NewIndustryPage(a.dash, opts, filter.Companies(rows), aggregate.Aggregate(rows))

	return industryOut.write(cmd.OutOrStdout(), page, func() (string, error) {
		return report.Industry(page)
	})
}
