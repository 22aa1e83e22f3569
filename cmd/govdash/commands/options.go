package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/govdash/internal/contracts"
	"github.com/wonny/govdash/internal/filter"
)

var optionsSel selectionFlags

// optionsCmd lists the drop-down values of one level
var optionsCmd = &cobra.Command{
	Use:       "options <level>",
	Short:     "계층 레벨별 선택 가능한 값 목록",
	Long:      "List the values selectable at a level (macro, sector, industry, basic_industry) under the current selection.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"macro", "sector", "industry", "basic_industry"},
	RunE:      runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
	optionsSel.register(optionsCmd)
}

func runOptions(cmd *cobra.Command, args []string) error {
	level, err := contracts.ParseLevel(args[0])
	if err != nil {
		return err
	}

	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	t := a.table()

	sel := filter.Resolve(t, optionsSel.selection())
	out := cmd.OutOrStdout()
	for _, v := range filter.ValidOptions(t, level, sel) {
		fmt.Fprintln(out, v)
	}
	return nil
}
