package printer_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JotaRandom/alie/internal/model"
	"github.com/JotaRandom/alie/internal/printer"
	"github.com/JotaRandom/alie/internal/steps"
)

func testReport() model.StatusReport {
	t0 := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	defs := steps.Definitions()
	report := model.StatusReport{
		Environment: model.EnvironmentChroot,
		Steps:       make([]model.StepStatus, 0, len(defs)),
	}
	for _, step := range defs {
		st := model.StepStatus{Step: step}
		if step.ID == "base-install" {
			st.Completed = true
			st.CompletedAt = &t0
		}
		report.Steps = append(report.Steps, st)
	}

	return report
}

func TestTablePrinterStatus(t *testing.T) {
	assert := assert.New(t)

	var b bytes.Buffer
	p := printer.NewTablePrinter(&b)
	require.NoError(t, p.PrintStatus(testReport()))

	out := b.String()
	assert.Contains(out, "Environment: chroot")
	assert.Contains(out, "ORDINAL")
	assert.Contains(out, "base-install")
	assert.Contains(out, "completed")
	assert.Contains(out, "desktop-install")
	assert.Contains(out, "pending")
}

func TestTablePrinterSignals(t *testing.T) {
	assert := assert.New(t)

	var b bytes.Buffer
	p := printer.NewTablePrinter(&b)
	require.NoError(t, p.PrintSignals([]model.SignalResult{
		{ID: "chroot", Status: model.SignalStatusAbsent, Message: "init and self root devices match"},
		{ID: "live-media", Status: model.SignalStatusPresent, Message: "archisobasedir found on the kernel cmdline"},
	}))

	out := b.String()
	assert.Contains(out, "SIGNAL")
	assert.Contains(out, "chroot")
	assert.Contains(out, "absent")
	assert.Contains(out, "archisobasedir")
}

func TestJSONPrinterStatus(t *testing.T) {
	assert := assert.New(t)

	var b bytes.Buffer
	p := printer.NewJSONPrinter(&b)
	require.NoError(t, p.PrintStatus(testReport()))

	var decoded struct {
		Environment string `json:"environment"`
		Steps       []struct {
			ID          string     `json:"id"`
			Ordinal     int        `json:"ordinal"`
			Completed   bool       `json:"completed"`
			CompletedAt *time.Time `json:"completed_at"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(b.Bytes(), &decoded))

	assert.Equal("chroot", decoded.Environment)
	require.Len(t, decoded.Steps, 5)
	assert.Equal("base-install", decoded.Steps[0].ID)
	assert.True(decoded.Steps[0].Completed)
	require.NotNil(t, decoded.Steps[0].CompletedAt)
	assert.False(decoded.Steps[1].Completed)
	assert.Nil(decoded.Steps[1].CompletedAt)
}

func TestJSONPrinterSignals(t *testing.T) {
	assert := assert.New(t)

	var b bytes.Buffer
	p := printer.NewJSONPrinter(&b)
	require.NoError(t, p.PrintSignals([]model.SignalResult{
		{ID: "arch-release", Status: model.SignalStatusUnreadable, Message: "could not stat /etc/arch-release"},
	}))

	var decoded []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(b.Bytes(), &decoded))

	require.Len(t, decoded, 1)
	assert.Equal("arch-release", decoded[0].ID)
	assert.Equal("unreadable", decoded[0].Status)
}

func TestPrintMessage(t *testing.T) {
	assert := assert.New(t)

	var table bytes.Buffer
	require.NoError(t, printer.NewTablePrinter(&table).PrintMessage("progress reset"))
	assert.Equal("progress reset\n", table.String())

	var jsonOut bytes.Buffer
	require.NoError(t, printer.NewJSONPrinter(&jsonOut).PrintMessage("progress reset"))
	assert.JSONEq(`{"message": "progress reset"}`, jsonOut.String())
}
