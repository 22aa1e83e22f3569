// Package datasettest builds governance tables for tests
package datasettest

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wonny/govdash/internal/dashcfg"
	"github.com/wonny/govdash/internal/dataset"
)

// Row is one company in test form. Year maps are keyed by year label;
// missing years produce empty cells.
type Row struct {
	Name     string
	Original string // defaults to Name
	Ticker   string

	Macro, Sector, Industry, Basic string

	Classification map[string]string
	Score          map[string]string
	Stock          map[string]string
	Comparison     map[string]string

	Average   string
	ShortTerm string
	LongTerm  string
}

// Schema is the default dashboard schema
func Schema() dataset.Schema {
	return dashcfg.Default().Schema()
}

// CSV renders rows under the full header of schema
func CSV(t testing.TB, schema dataset.Schema, rows ...Row) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := schema.RequiredColumns()
	require.NoError(t, w.Write(header))

	for _, r := range rows {
		require.NoError(t, w.Write(r.cells(header, schema)))
	}
	w.Flush()
	require.NoError(t, w.Error())

	return buf.Bytes()
}

// Table builds a *dataset.Table with the default schema
func Table(t testing.TB, rows ...Row) *dataset.Table {
	t.Helper()

	schema := Schema()
	table, err := dataset.ReadCSV(bytes.NewReader(CSV(t, schema, rows...)), dataset.Options{Schema: schema})
	require.NoError(t, err)
	return table
}

func (r Row) cells(header []string, schema dataset.Schema) []string {
	original := r.Original
	if original == "" {
		original = r.Name
	}

	values := map[string]string{
		dataset.ColCompanyName:           r.Name,
		dataset.ColCompanyNameOriginal:   original,
		dataset.ColTicker:                r.Ticker,
		dataset.ColMacroSector:           r.Macro,
		dataset.ColSector:                r.Sector,
		dataset.ColIndustry:              r.Industry,
		dataset.ColBasicIndustry:         r.Basic,
		dataset.ColAverageClassification: r.Average,
		dataset.ColShortTermPerformance:  r.ShortTerm,
		dataset.ColLongTermPerformance:   r.LongTerm,
	}
	for _, y := range schema.GovernanceYears {
		values[dataset.ClassificationColumn(y)] = r.Classification[y]
		values[dataset.GovernanceScoreColumn(y)] = r.Score[y]
	}
	for _, y := range schema.StockYears {
		values[dataset.StockPerformanceColumn(y)] = r.Stock[y]
		values[dataset.ComparisonColumn(y)] = r.Comparison[y]
	}

	out := make([]string, len(header))
	for i, col := range header {
		out[i] = values[col]
	}
	return out
}

// Sample is a small cross-sector dataset shaped like the NIFTY 100 governance file
func Sample() []Row {
	return []Row{
		{
			Name: "Reliance Industries Ltd.", Original: "RELIANCE INDUSTRIES LTD.", Ticker: "RELIANCE",
			Macro: "Energy", Sector: "Oil Gas & Consumable Fuels", Industry: "Petroleum Products", Basic: "Refineries & Marketing",
			Classification: map[string]string{"2020-21": "Adequate", "2022-23": "Strong", "2023-24": "Strong"},
			Score:          map[string]string{"2020-21": "62", "2022-23": "71", "2023-24": "74"},
			Stock:          map[string]string{"2019-20": "12.40%", "2020-21": "41.3%", "2021-22": "18.9%", "2022-23": "0.6%", "2023-24": "8.2%"},
			Comparison:     map[string]string{"2019-20": "Better", "2020-21": "Better", "2021-22": "Better", "2022-23": "Worse", "2023-24": "Worse"},
			Average:        "Strong", ShortTerm: "Better", LongTerm: "Better",
		},
		{
			Name: "Indian Oil Corporation Ltd.", Original: "INDIAN OIL CORPORATION LTD.", Ticker: "IOC",
			Macro: "Energy", Sector: "Oil Gas & Consumable Fuels", Industry: "Petroleum Products", Basic: "Refineries & Marketing",
			Classification: map[string]string{"2020-21": "Below Average", "2022-23": "Weak", "2023-24": "Below Average"},
			Score:          map[string]string{"2020-21": "48", "2022-23": "39", "2023-24": "51"},
			Stock:          map[string]string{"2019-20": "-38.2%", "2020-21": "-1.4%", "2021-22": "12.0%", "2022-23": "-6.1%", "2023-24": "102.5%"},
			Comparison:     map[string]string{"2019-20": "Worse", "2020-21": "Worse", "2021-22": "Worse", "2022-23": "Worse", "2023-24": "Better"},
			Average:        "Below Average", ShortTerm: "Worse", LongTerm: "Worse",
		},
		{
			Name: "Oil & Natural Gas Corporation Ltd.", Original: "OIL & NATURAL GAS CORPORATION LTD.", Ticker: "ONGC",
			Macro: "Energy", Sector: "Oil Gas & Consumable Fuels", Industry: "Gas", Basic: "Oil Exploration & Production",
			Classification: map[string]string{"2020-21": "Adequate", "2022-23": "Adequate", "2023-24": "Adequate"},
			Score:          map[string]string{"2020-21": "58", "2022-23": "60", "2023-24": "63"},
			Stock:          map[string]string{"2019-20": "-55.0%", "2020-21": "6.2%", "2021-22": "48.7%", "2022-23": "2.3%", "2023-24": "1,204.5%"},
			Comparison:     map[string]string{"2019-20": "Worse", "2020-21": "Worse", "2021-22": "Better", "2022-23": "Better", "2023-24": "Better"},
			Average:        "Adequate", ShortTerm: "Better", LongTerm: "Worse",
		},
		{
			Name: "HDFC Bank Ltd.", Original: "HDFC BANK LTD.", Ticker: "HDFCBANK",
			Macro: "Financial Services", Sector: "Financial Services", Industry: "Banks", Basic: "Private Sector Bank",
			Classification: map[string]string{"2020-21": "Strong", "2022-23": "Strong", "2023-24": "Strong"},
			Score:          map[string]string{"2020-21": "77", "2022-23": "79", "2023-24": "81"},
			Stock:          map[string]string{"2019-20": "-19.5%", "2020-21": "71.4%", "2021-22": "-1.9%", "2022-23": "9.9%", "2023-24": "-4.6%"},
			Comparison:     map[string]string{"2019-20": "Better", "2020-21": "Better", "2021-22": "Worse", "2022-23": "Better", "2023-24": "Worse"},
			Average:        "Strong", ShortTerm: "Worse", LongTerm: "Better",
		},
		{
			Name: "State Bank of India", Original: "STATE BANK OF INDIA", Ticker: "SBIN",
			Macro: "Financial Services", Sector: "Financial Services", Industry: "Banks", Basic: "Public Sector Bank",
			Classification: map[string]string{"2020-21": "Weak", "2022-23": "Weak", "2023-24": "Below Average"},
			Score:          map[string]string{"2020-21": "35", "2022-23": "41", "2023-24": "47"},
			Stock:          map[string]string{"2019-20": "-36.8%", "2020-21": "85.1%", "2021-22": "24.7%", "2022-23": "5.6%", "2023-24": "40.2%"},
			Comparison:     map[string]string{"2019-20": "Worse", "2020-21": "Better", "2021-22": "Better", "2022-23": "Better", "2023-24": "Better"},
			Average:        "Weak", ShortTerm: "Better", LongTerm: "Better than NIFTY 100",
		},
		{
			Name: "Bajaj Finance Ltd.", Original: "BAJAJ FINANCE LTD.", Ticker: "BAJFINANCE",
			Macro: "Financial Services", Sector: "Financial Services", Industry: "Finance", Basic: "Non Banking Financial Company (NBFC)",
			Classification: map[string]string{"2020-21": "Adequate", "2022-23": "Strong", "2023-24": "Adequate"},
			Score:          map[string]string{"2020-21": "64", "2022-23": "70", "2023-24": "66"},
			Stock:          map[string]string{"2019-20": "-22.0%", "2020-21": "N/A", "2021-22": "38.1%", "2022-23": "-3.0%", "2023-24": "24.4%"},
			Comparison:     map[string]string{"2019-20": "Better", "2020-21": "Better", "2021-22": "Better", "2022-23": "Worse", "2023-24": "Worse"},
			Average:        "Adequate", ShortTerm: "Worse", LongTerm: "Better",
		},
		{
			Name: "Infosys Ltd.", Original: "INFOSYS LTD.", Ticker: "INFY",
			Macro: "Information Technology", Sector: "Information Technology", Industry: "IT - Software", Basic: "Computers - Software & Consulting",
			Classification: map[string]string{"2022-23": "Strong", "2023-24": "Excellent"},
			Score:          map[string]string{"2020-21": "90", "2022-23": "76", "2023-24": "84"},
			Stock:          map[string]string{"2019-20": "-11.3%", "2020-21": "115.0%", "2021-22": "37.2%", "2022-23": "-23.1%", "2023-24": "10.5%"},
			Comparison:     map[string]string{"2019-20": "Better", "2020-21": "Better", "2021-22": "Better", "2022-23": "Worse", "2023-24": "Worse"},
			Average:        "Excellent", ShortTerm: "Better", LongTerm: "Better",
		},
		{
			Name: "Tata Consultancy Services Ltd.", Original: "TATA CONSULTANCY SERVICES LTD.", Ticker: "TCS",
			Macro: "Information Technology", Sector: "Information Technology", Industry: "IT - Software", Basic: "Computers - Software & Consulting",
			Classification: map[string]string{"2020-21": "Strong", "2022-23": "Strong", "2023-24": "Strong"},
			Score:          map[string]string{"2020-21": "80", "2022-23": "82", "2023-24": "80"},
			Stock:          map[string]string{"2019-20": "-10.2%", "2020-21": "64.1%", "2021-22": "20.3%", "2022-23": "-10.1%", "2023-24": "21.8%"},
			Comparison:     map[string]string{"2019-20": "Better", "2020-21": "Better", "2021-22": "Worse", "2022-23": "Worse", "2023-24": "Better"},
			Average:        "Strong", ShortTerm: "Better", LongTerm: "Better",
		},
	}
}
