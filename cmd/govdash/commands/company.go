package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/govdash/internal/detail"
	"github.com/wonny/govdash/internal/report"
	"github.com/wonny/govdash/internal/view"
)

var (
	companyOut  outputFlags
	companyList bool
)

// companyCmd prints the per-company detail page
var companyCmd = &cobra.Command{
	Use:   "company [name]",
	Short: "회사별 거버넌스 · 주가 상세",
	Long: `Print the detail page of one company.

The name is matched exactly against "Company Name Original".
Without a name the first company of the dataset is shown.

Examples:
  go run ./cmd/govdash company "INFOSYS LTD."
  go run ./cmd/govdash company "INFOSYS LTD." --pretty
  go run ./cmd/govdash company --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompany,
}

func init() {
	rootCmd.AddCommand(companyCmd)
	companyOut.register(companyCmd)
	companyCmd.Flags().BoolVar(&companyList, "list", false, "list company names and exit")
}

func runCompany(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	t := a.table()
	out := cmd.OutOrStdout()

	if companyList {
		for _, name := range t.CompanyKeys() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	key := ""
	if len(args) == 1 {
		key = args[0]
	} else if keys := t.CompanyKeys(); len(keys) > 0 {
		key = keys[0]
	}

	d, err := detail.Detail(t, key)
	if err != nil {
		return err
	}

	page := view.NewCompanyPage(a.dash, nil, d)
	return companyOut.write(out, page, func() (string, error) {
		return report.Company(page)
	})
}
