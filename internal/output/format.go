// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"

	"todo/internal/service"
)

// FormatItem writes a numbered item line: "{N}. [{icon}] {text}\n".
// Numbers are 1-based display positions.
func FormatItem(w io.Writer, num int, item service.Item) {
	fmt.Fprintf(w, "%d. %s\n", num, item)
}

// FormatItems writes all items with 1-based numbering, or the empty-state
// line when there are none.
func FormatItems(w io.Writer, items []service.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No todo items found.")
		return
	}
	for i, item := range items {
		FormatItem(w, i+1, item)
	}
}

// FormatPattern writes a single pattern mapping line.
func FormatPattern(w io.Writer, p service.Pattern) {
	fmt.Fprintf(w, "  '%s' -> '%s'\n", p.Prefix, p.Expansion)
}

// FormatPatterns writes the full pattern listing, or the empty-state line.
func FormatPatterns(w io.Writer, patterns []service.Pattern) {
	if len(patterns) == 0 {
		fmt.Fprintln(w, "No patterns defined.")
		return
	}
	fmt.Fprintln(w, "Patterns:")
	for _, p := range patterns {
		FormatPattern(w, p)
	}
}
