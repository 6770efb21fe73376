// Package steps holds the static installation sequence. The table defines the
// total order of the installation, it is not user-mutable at runtime.
package steps

import (
	"fmt"

	"github.com/JotaRandom/alie/internal/model"
)

var table = []model.StepDefinition{
	{
		ID:           "base-install",
		Ordinal:      1,
		Description:  "Partition the target disk and install the base system with pacstrap",
		Environments: []model.Environment{model.EnvironmentLiveMedia},
		Privilege:    model.PrivilegeRoot,
		Script:       "base-install.sh",
	},
	{
		ID:           "chroot-setup",
		Ordinal:      2,
		Description:  "Configure the new system from inside the chroot (locale, bootloader, users)",
		Environments: []model.Environment{model.EnvironmentChroot},
		Privilege:    model.PrivilegeRoot,
		Script:       "chroot-setup.sh",
	},
	{
		ID:           "post-install",
		Ordinal:      3,
		Description:  "Build and install the AUR helper and user level packages",
		Environments: []model.Environment{model.EnvironmentInstalledNoDesktop},
		Privilege:    model.PrivilegeUser,
		Script:       "post-install.sh",
	},
	{
		ID:           "desktop-install",
		Ordinal:      4,
		Description:  "Install the selected desktop environment or window manager",
		Environments: []model.Environment{model.EnvironmentInstalledNoDesktop},
		Privilege:    model.PrivilegeRoot,
		Script:       "desktop-install.sh",
	},
	{
		ID:           "config-deploy",
		Ordinal:      5,
		Description:  "Deploy shell, editor and desktop configuration files",
		Environments: []model.Environment{model.EnvironmentInstalledWithDesktop},
		Privilege:    model.PrivilegeUser,
		Script:       "config-deploy.sh",
	},
}

// Definitions returns the full installation sequence in ordinal order.
func Definitions() []model.StepDefinition {
	defs := make([]model.StepDefinition, len(table))
	copy(defs, table)
	return defs
}

// ByID returns the step with the given identifier.
func ByID(defs []model.StepDefinition, id string) (*model.StepDefinition, error) {
	for _, d := range defs {
		if d.ID == id {
			dCopy := d
			return &dCopy, nil
		}
	}
	return nil, fmt.Errorf("step %q: %w", id, model.ErrNotFound)
}

// ByOrdinal returns the step with the given ordinal.
func ByOrdinal(defs []model.StepDefinition, ordinal int) (*model.StepDefinition, error) {
	for _, d := range defs {
		if d.Ordinal == ordinal {
			dCopy := d
			return &dCopy, nil
		}
	}
	return nil, fmt.Errorf("step with ordinal %d: %w", ordinal, model.ErrNotFound)
}

// NextAfter returns the step that follows the given ordinal, or nil when the
// sequence is exhausted.
func NextAfter(defs []model.StepDefinition, ordinal int) *model.StepDefinition {
	var next *model.StepDefinition
	for _, d := range defs {
		if d.Ordinal <= ordinal {
			continue
		}
		if next == nil || d.Ordinal < next.Ordinal {
			dCopy := d
			next = &dCopy
		}
	}
	return next
}

// HighestCompleted returns the greatest ordinal among the completed entries,
// or 0 when nothing completed yet. Entries that don't match any definition
// are ignored.
func HighestCompleted(defs []model.StepDefinition, entries []model.ProgressEntry) int {
	completed := make(map[string]bool, len(entries))
	for _, e := range entries {
		completed[e.StepID] = true
	}

	highest := 0
	for _, d := range defs {
		if completed[d.ID] && d.Ordinal > highest {
			highest = d.Ordinal
		}
	}
	return highest
}
