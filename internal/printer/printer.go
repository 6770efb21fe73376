package printer

import "github.com/JotaRandom/alie/internal/model"

// Printer knows how to print installer information in different formats.
type Printer interface {
	PrintStatus(report model.StatusReport) error
	PrintSignals(signals []model.SignalResult) error
	PrintMessage(msg string) error
}
