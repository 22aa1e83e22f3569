package dashcfg

import "github.com/wonny/govdash/internal/dataset"

// Config는 대시보드 화면 구성 (연도 윈도우, 벤치마크)
type Config struct {
	Benchmark       string   `yaml:"benchmark" json:"benchmark" validate:"required"`
	GovernanceYears []string `yaml:"governance_years" json:"governance_years" validate:"required,min=1,unique,dive,required"`
	StockYears      []string `yaml:"stock_years" json:"stock_years" validate:"required,min=1,unique,dive,required"`
	ShortTermLabel  string   `yaml:"short_term_label" json:"short_term_label" validate:"required"`
	LongTermLabel   string   `yaml:"long_term_label" json:"long_term_label" validate:"required"`
}

// Default returns the NIFTY 100 year windows and labels
func Default() *Config {
	return &Config{
		Benchmark:       "NIFTY 100",
		GovernanceYears: []string{"2020-21", "2022-23", "2023-24"},
		StockYears:      []string{"2019-20", "2020-21", "2021-22", "2022-23", "2023-24"},
		ShortTermLabel:  "Short Term Performance (2019-2024)",
		LongTermLabel:   "Long Term Performance (2015-2024)",
	}
}

// Schema returns the dataset columns implied by the configured year windows
func (c *Config) Schema() dataset.Schema {
	return dataset.Schema{
		GovernanceYears: append([]string(nil), c.GovernanceYears...),
		StockYears:      append([]string(nil), c.StockYears...),
	}
}
