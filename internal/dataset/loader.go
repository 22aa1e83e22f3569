package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Options controls how a dataset file is read
type Options struct {
	Schema Schema
	Sheet  string // xlsx only; first sheet when empty
}

// LoadFile reads a .csv or .xlsx file into a Table
// ⭐ SSOT: 데이터셋 파일 읽기는 이 함수에서만
func LoadFile(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f, path, opts)
}

// Decode parses r in the format implied by name's extension and
// records name as the table source
func Decode(r io.Reader, name string, opts Options) (*Table, error) {
	var t *Table
	var err error
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		t, err = ReadCSV(r, opts)
	case ".xlsx":
		t, err = ReadXLSX(r, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	t.source = name
	return t, nil
}

// ReadCSV parses comma-delimited text with a header row
func ReadCSV(r io.Reader, opts Options) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, rec)
	}

	return NewTable(header, rows, opts.Schema)
}

// ReadXLSX parses the first sheet (or opts.Sheet) of a workbook; row 1 is the header
func ReadXLSX(r io.Reader, opts Options) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoHeader
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	return NewTable(rows[0], rows[1:], opts.Schema)
}
