package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/JotaRandom/alie/internal/app/status"
	"github.com/JotaRandom/alie/internal/environ"
	"github.com/JotaRandom/alie/internal/printer"
)

type StatusCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewStatusCommand returns the status command.
func NewStatusCommand(rootCmd *RootCommand, app *kingpin.Application) *StatusCommand {
	c := &StatusCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("status", "Show the detected environment and every step's completion state.")
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c StatusCommand) Name() string { return c.Cmd.FullCommand() }

func (c StatusCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.LoadConfig(ctx)
	if err != nil {
		return err
	}

	classifier, err := environ.NewService(environ.ServiceConfig{Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create classifier: %w", err)
	}

	repo, err := c.rootCmd.NewProgressRepository(cfg, classifier.Classify(ctx))
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	// Create status service.
	svc, err := status.NewService(status.ServiceConfig{
		Classifier: classifier,
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute status.
	report, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("could not get installation status: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintStatus(*report); err != nil {
		return fmt.Errorf("could not print status: %w", err)
	}

	return nil
}
