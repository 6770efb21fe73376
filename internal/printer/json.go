package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/JotaRandom/alie/internal/model"
)

// JSONPrinter prints installer information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// statusOutput represents the full installer status output.
type statusOutput struct {
	Environment string       `json:"environment"`
	Steps       []stepOutput `json:"steps"`
}

// stepOutput represents a single step in the status output.
type stepOutput struct {
	ID          string     `json:"id"`
	Ordinal     int        `json:"ordinal"`
	Description string     `json:"description"`
	Privilege   string     `json:"privilege"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// signalOutput represents a detection signal in the checkup output.
type signalOutput struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

// PrintStatus prints the full installer status in JSON format.
func (j *JSONPrinter) PrintStatus(report model.StatusReport) error {
	output := statusOutput{
		Environment: string(report.Environment),
		Steps:       make([]stepOutput, len(report.Steps)),
	}

	for i, st := range report.Steps {
		output.Steps[i] = stepOutput{
			ID:          st.Step.ID,
			Ordinal:     st.Step.Ordinal,
			Description: st.Step.Description,
			Privilege:   string(st.Step.Privilege),
			Completed:   st.Completed,
		}
		if st.CompletedAt != nil {
			utcTime := st.CompletedAt.UTC()
			output.Steps[i].CompletedAt = &utcTime
		}
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// PrintSignals prints environment detection signals in JSON format.
func (j *JSONPrinter) PrintSignals(signals []model.SignalResult) error {
	items := make([]signalOutput, len(signals))
	for i, s := range signals {
		items[i] = signalOutput{
			ID:      s.ID,
			Status:  string(s.Status),
			Message: s.Message,
		}
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	output := messageOutput{Message: msg}
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
