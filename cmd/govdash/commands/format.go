package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wonny/govdash/internal/report"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 모든 커맨드가 동일한 출력 포맷을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

// outputFlags are shared by the page commands
type outputFlags struct {
	pretty bool
	json   bool
	style  string
	width  int
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.pretty, "pretty", false, "render markdown for the terminal")
	cmd.Flags().BoolVar(&o.json, "json", false, "print the page model as JSON")
	cmd.Flags().StringVar(&o.style, "style", "dark", "terminal style for --pretty (dark|light|notty|ascii)")
	cmd.Flags().IntVar(&o.width, "width", 100, "word wrap width for --pretty")
}

// write prints a page as JSON, styled markdown or plain markdown
func (o *outputFlags) write(w io.Writer, model interface{}, render func() (string, error)) error {
	if o.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(model)
	}

	md, err := render()
	if err != nil {
		return err
	}

	if o.pretty {
		md, err = report.Pretty(md, o.style, o.width)
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, md)
	return err
}

// PrintSeparator prints a visual separator
func PrintSeparator(w io.Writer) {
	fmt.Fprintln(w, "───────────────────────────────────────────────────────────")
}

// PrintDoubleSeparator prints a double-line separator
func PrintDoubleSeparator(w io.Writer) {
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════")
}

// PrintHeader prints a titled block header
func PrintHeader(w io.Writer, title string) {
	PrintDoubleSeparator(w)
	fmt.Fprintf(w, "  %s\n", title)
	PrintSeparator(w)
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "✅ %s\n", message)
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "⚠️  %s\n", message)
}

// PrintKeyValue prints key-value pairs
func PrintKeyValue(w io.Writer, key string, value string, keyWidth int) {
	fmt.Fprintf(w, "   %-*s : %s\n", keyWidth, key, value)
}

// PrintList prints a bulleted list
func PrintList(w io.Writer, items []string) {
	for _, item := range items {
		fmt.Fprintf(w, "   • %s\n", item)
	}
}
