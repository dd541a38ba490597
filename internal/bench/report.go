package bench

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
)

const separator = "--------------------------------------------------------"

// millis renders d as fractional milliseconds with no trailing zeros.
func millis(d time.Duration) string {
	return formatMillis(float64(d) / float64(time.Millisecond))
}

func formatMillis(ms float64) string {
	return strconv.FormatFloat(ms, 'f', -1, 64)
}

func writeCallLine(w io.Writer, label string, i int, elapsed time.Duration) {
	fmt.Fprintf(w, "[%s] Time for call %d: %s milliseconds.\n", label, i+1, millis(elapsed))
}

func writeSummary(w io.Writer, res PassResult) {
	fmt.Fprintf(w, "\n%s\n [%s] SUMMARY: \n%s\n\n", separator, res.Label, separator)
	fmt.Fprintln(w, summaryTable(res).Render())
	fmt.Fprintf(w, "\n%s\n\n", separator)
}

// summaryTable renders the two summary rows of a pass.
func summaryTable(res PassResult) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("(index)", "Values").
		Rows(
			[]string{"Average time", formatMillis(res.AverageMillis())},
			[]string{"Total time", millis(res.Total)},
		)
}
