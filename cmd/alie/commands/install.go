package commands

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/alecthomas/kingpin/v2"

	"github.com/JotaRandom/alie/internal/app/execute"
	"github.com/JotaRandom/alie/internal/app/reset"
	"github.com/JotaRandom/alie/internal/app/resolve"
	"github.com/JotaRandom/alie/internal/environ"
	"github.com/JotaRandom/alie/internal/model"
	"github.com/JotaRandom/alie/internal/printer"
	runnerexec "github.com/JotaRandom/alie/internal/runner/exec"
	"github.com/JotaRandom/alie/internal/steps"
	"github.com/JotaRandom/alie/internal/utils/env"
)

type InstallCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	manual   bool
	yes      bool
	envSpecs []string
}

// NewInstallCommand returns the install command.
func NewInstallCommand(rootCmd *RootCommand, app *kingpin.Application) *InstallCommand {
	c := &InstallCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("install", "Resolve and run the next installation step.").Default()
	c.Cmd.Flag("manual", "Pick the step from a menu instead of resolving it.").Short('m').BoolVar(&c.manual)
	c.Cmd.Flag("yes", "Run the proposed step without asking.").BoolVar(&c.yes)
	c.Cmd.Flag("env", "Extra KEY=VALUE environment for the step script (repeatable, bare KEY copies the value from the current environment).").StringsVar(&c.envSpecs)

	return c
}

func (c InstallCommand) Name() string { return c.Cmd.FullCommand() }

func (c InstallCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.LoadConfig(ctx)
	if err != nil {
		return err
	}

	// Environment for the step script: config file first, --env flags win.
	flagEnv, err := env.ParseSpecs(c.envSpecs)
	if err != nil {
		return fmt.Errorf("invalid --env flag: %w", err)
	}
	scriptEnv := env.Merge(cfg.Env, flagEnv)

	// Classify the host before anything else: the progress repository's write
	// location depends on the installation phase.
	classifier, err := environ.NewService(environ.ServiceConfig{Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create classifier: %w", err)
	}
	environment := classifier.Classify(ctx)

	repo, err := c.rootCmd.NewProgressRepository(cfg, environment)
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	runner, err := runnerexec.NewRunner(runnerexec.RunnerConfig{
		Stdin:  c.rootCmd.Stdin,
		Stdout: c.rootCmd.Stdout,
		Stderr: c.rootCmd.Stderr,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create runner: %w", err)
	}

	execSvc, err := execute.NewService(execute.ServiceConfig{
		Runner:     runner,
		Repository: repo,
		ScriptsDir: cfg.ScriptsDir,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create execute service: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)

	runStep := func(step model.StepDefinition) error {
		return execSvc.Execute(ctx, execute.Request{Step: step, Env: scriptEnv})
	}

	// Manual mode skips resolution, never the privilege gate (the execute
	// service enforces it regardless of how the step was chosen).
	if c.manual {
		return c.runManual(ctx, environment, p, runStep)
	}

	resolveSvc, err := resolve.NewService(resolve.ServiceConfig{
		Classifier: classifier,
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create resolve service: %w", err)
	}

	resolution, err := resolveSvc.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("could not resolve next step: %w", err)
	}

	switch resolution.Kind {
	case model.ResolutionComplete:
		return p.PrintMessage("All installation steps are completed.")

	case model.ResolutionManualRequired:
		if err := p.PrintMessage("The environment could not be classified, pick the step manually."); err != nil {
			return err
		}
		return c.runManual(ctx, environment, p, runStep)

	case model.ResolutionMismatch:
		return c.runRecovery(ctx, *resolution, p, runStep, reset.ServiceConfig{
			Repository: repo,
			Logger:     logger,
		})

	case model.ResolutionProposal:
		step := *resolution.Proposed
		if !c.yes {
			ok := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Environment %s, next step %d: %s (%s). Run it?",
					resolution.Environment, step.Ordinal, step.ID, step.Description),
				Default: true,
			}
			if err := survey.AskOne(prompt, &ok); err != nil {
				return fmt.Errorf("could not read confirmation: %w", err)
			}
			if !ok {
				return p.PrintMessage("Aborted.")
			}
		}
		return runStep(step)
	}

	return fmt.Errorf("unknown resolution kind %q", resolution.Kind)
}

// runManual shows the full step menu and runs the operator's pick.
func (c InstallCommand) runManual(ctx context.Context, environment model.Environment, p printer.Printer, runStep func(model.StepDefinition) error) error {
	const abortOption = "Abort"

	defs := steps.Definitions()
	options := make([]string, 0, len(defs)+1)
	byLabel := make(map[string]model.StepDefinition, len(defs))
	for _, step := range defs {
		label := fmt.Sprintf("%d. %s — %s (%s)", step.Ordinal, step.ID, step.Description, step.Privilege)
		options = append(options, label)
		byLabel[label] = step
	}
	options = append(options, abortOption)

	var choice string
	prompt := &survey.Select{
		Message: fmt.Sprintf("Detected environment %s. Pick a step:", environment),
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return fmt.Errorf("could not read step selection: %w", err)
	}

	if choice == abortOption {
		return p.PrintMessage("Aborted.")
	}

	return runStep(byLabel[choice])
}

// runRecovery handles a mismatch resolution: the operator picks the recovery
// action, nothing is decided automatically.
func (c InstallCommand) runRecovery(ctx context.Context, resolution model.Resolution, p printer.Printer, runStep func(model.StepDefinition) error, resetCfg reset.ServiceConfig) error {
	msg := fmt.Sprintf("The detected environment %s does not admit the next step.", resolution.Environment)
	if err := p.PrintMessage(msg); err != nil {
		return err
	}

	options := make([]string, 0, len(resolution.RecoveryActions))
	for _, action := range resolution.RecoveryActions {
		switch action {
		case model.RecoveryRetryLast:
			options = append(options, fmt.Sprintf("Retry the last completed step (%s)", resolution.LastCompleted.ID))
		case model.RecoveryReset:
			options = append(options, "Reset all recorded progress")
		case model.RecoveryAbort:
			options = append(options, "Abort")
		}
	}

	var choice string
	prompt := &survey.Select{
		Message: "Recovery action:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return fmt.Errorf("could not read recovery selection: %w", err)
	}

	switch {
	case choice == "Abort":
		return p.PrintMessage("Aborted.")

	case choice == "Reset all recorded progress":
		svc, err := reset.NewService(resetCfg)
		if err != nil {
			return fmt.Errorf("could not create reset service: %w", err)
		}
		if err := svc.Run(ctx); err != nil {
			return err
		}
		return p.PrintMessage("Installation progress reset.")

	default: // Retry last.
		return runStep(*resolution.LastCompleted)
	}
}
