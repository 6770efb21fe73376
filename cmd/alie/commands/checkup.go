package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/JotaRandom/alie/internal/environ"
	"github.com/JotaRandom/alie/internal/model"
	"github.com/JotaRandom/alie/internal/printer"
)

type CheckupCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewCheckupCommand returns the checkup command.
func NewCheckupCommand(rootCmd *RootCommand, app *kingpin.Application) *CheckupCommand {
	c := &CheckupCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("checkup", "Report every environment detection signal and the resulting classification.")
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c CheckupCommand) Name() string { return c.Cmd.FullCommand() }

func (c CheckupCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	classifier, err := environ.NewService(environ.ServiceConfig{Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create classifier: %w", err)
	}

	signals := classifier.Signals(ctx)
	environment := classifier.Classify(ctx)

	if c.format == "json" {
		p := printer.NewJSONPrinter(c.rootCmd.Stdout)
		if err := p.PrintSignals(signals); err != nil {
			return fmt.Errorf("could not print signals: %w", err)
		}
		return nil
	}

	out := c.rootCmd.Stdout
	fmt.Fprintln(out, "Checking environment signals...")
	unreadable := 0
	for _, s := range signals {
		fmt.Fprintf(out, "  %s %-22s %s\n", signalIcon(s.Status), s.ID, s.Message)
		if s.Status == model.SignalStatusUnreadable {
			unreadable++
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Environment: %s\n", environment)
	if unreadable > 0 {
		fmt.Fprintf(out, "%d signal(s) could not be read, the classification may be incomplete.\n", unreadable)
	}

	return nil
}

func signalIcon(status model.SignalStatus) string {
	switch status {
	case model.SignalStatusPresent:
		return "OK"
	case model.SignalStatusAbsent:
		return "--"
	case model.SignalStatusUnreadable:
		return "??"
	default:
		return "??"
	}
}
