package printer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/JotaRandom/alie/internal/model"
)

// TablePrinter prints installer information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintStatus prints the detected environment and every step in a table.
func (t *TablePrinter) PrintStatus(report model.StatusReport) error {
	fmt.Fprintf(t.writer, "Environment: %s\n\n", report.Environment)

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header
	fmt.Fprintln(tw, "ORDINAL\tSTEP\tENVIRONMENTS\tPRIVILEGE\tSTATUS\tCOMPLETED")

	// Print rows
	for _, st := range report.Steps {
		status := "pending"
		completed := "-"
		if st.Completed {
			status = "completed"
			if st.CompletedAt != nil {
				completed = TimeAgo(*st.CompletedAt)
			}
		}

		envs := make([]string, 0, len(st.Step.Environments))
		for _, env := range st.Step.Environments {
			envs = append(envs, string(env))
		}

		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			st.Step.Ordinal,
			st.Step.ID,
			strings.Join(envs, ","),
			st.Step.Privilege,
			status,
			completed,
		)
	}

	return nil
}

// PrintSignals prints environment detection signals in a table format.
func (t *TablePrinter) PrintSignals(signals []model.SignalResult) error {
	if len(signals) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header
	fmt.Fprintln(tw, "SIGNAL\tSTATUS\tDETAIL")

	// Print rows
	for _, s := range signals {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Status, s.Message)
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}
