package commands

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/alecthomas/kingpin/v2"

	"github.com/JotaRandom/alie/internal/app/reset"
	"github.com/JotaRandom/alie/internal/environ"
	"github.com/JotaRandom/alie/internal/printer"
)

type ResetCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	force bool
}

// NewResetCommand returns the reset command.
func NewResetCommand(rootCmd *RootCommand, app *kingpin.Application) *ResetCommand {
	c := &ResetCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("reset", "Wipe all recorded installation progress.")
	c.Cmd.Flag("force", "Reset without asking for confirmation.").BoolVar(&c.force)

	return c
}

func (c ResetCommand) Name() string { return c.Cmd.FullCommand() }

func (c ResetCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger
	p := printer.NewTablePrinter(c.rootCmd.Stdout)

	// Irreversible, so it asks. The service itself never does.
	if !c.force {
		ok := false
		prompt := &survey.Confirm{
			Message: "This deletes all recorded installation progress. Continue?",
			Default: false,
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return fmt.Errorf("could not read confirmation: %w", err)
		}
		if !ok {
			return p.PrintMessage("Aborted.")
		}
	}

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

	// Create reset service.
	svc, err := reset.NewService(reset.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute reset.
	if err := svc.Run(ctx); err != nil {
		return fmt.Errorf("could not reset progress: %w", err)
	}

	return p.PrintMessage("Installation progress reset.")
}
