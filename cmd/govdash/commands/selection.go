package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/govdash/internal/filter"
)

// selectionFlags are the four hierarchy filters shared by industry and options
type selectionFlags struct {
	macro         string
	sector        string
	industry      string
	basicIndustry string
}

func (s *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.macro, "macro", filter.All, "macro-economic sector")
	cmd.Flags().StringVar(&s.sector, "sector", filter.All, "sector")
	cmd.Flags().StringVar(&s.industry, "industry", filter.All, "industry")
	cmd.Flags().StringVar(&s.basicIndustry, "basic-industry", filter.All, "basic industry")
}

func (s *selectionFlags) selection() filter.Selection {
	return filter.Selection{
		Macro:         s.macro,
		Sector:        s.sector,
		Industry:      s.industry,
		BasicIndustry: s.basicIndustry,
	}
}
