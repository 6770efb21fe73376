// Package environ classifies the execution context of the host: live media,
// chroot, installed system with or without a desktop, or unknown.
package environ

import (
	"context"
	"strings"

	"github.com/JotaRandom/alie/internal/log"
	"github.com/JotaRandom/alie/internal/model"
)

const (
	initRootPath = "/proc/1/root/."
	selfRootPath = "/"
	releaseFile  = "/etc/arch-release"
	// displayManagerUnit is the alias symlink systemd registers when a
	// desktop session manager is enabled.
	displayManagerUnit = "/etc/systemd/system/display-manager.service"
)

// liveMediaMarkers are kernel cmdline substrings the Arch ISO boots with.
var liveMediaMarkers = []string{"archisobasedir", "archisolabel"}

// Classifier knows how to classify the host environment.
type Classifier interface {
	Classify(ctx context.Context) model.Environment
}

// ServiceConfig is the configuration for the classifier service.
type ServiceConfig struct {
	Host   Host
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Host == nil {
		c.Host = NewSystemHost()
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "environ.Classifier"})
	return nil
}

// Service classifies the host environment from live signals. It is a pure
// function of host state, reads only, recomputed on every call.
type Service struct {
	host   Host
	logger log.Logger
}

// NewService creates a new classifier service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, err
	}

	return &Service{
		host:   cfg.Host,
		logger: cfg.Logger,
	}, nil
}

// Classify evaluates the detection signals in a fixed priority order and
// returns the environment. Ambiguous or unreadable signals fall through to
// the next check, never to an error: the worst outcome is EnvironmentUnknown.
//
// The chroot check runs first on purpose: a chroot built from live media
// still carries the live media cmdline markers.
func (s *Service) Classify(ctx context.Context) model.Environment {
	if present, conclusive := s.chrootSignal(); conclusive && present {
		return model.EnvironmentChroot
	}

	if present, conclusive := s.liveMediaSignal(); conclusive && present {
		return model.EnvironmentLiveMedia
	}

	release, conclusive := s.fileSignal(releaseFile)
	if !conclusive || !release {
		return model.EnvironmentUnknown
	}

	if desktop, conclusive := s.fileSignal(displayManagerUnit); conclusive && desktop {
		return model.EnvironmentInstalledWithDesktop
	}
	return model.EnvironmentInstalledNoDesktop
}

// Signals evaluates every detection signal independently, for operator
// inspection. Unlike Classify it does not short-circuit.
func (s *Service) Signals(ctx context.Context) []model.SignalResult {
	results := make([]model.SignalResult, 0, 4)

	if present, conclusive := s.chrootSignal(); !conclusive {
		results = append(results, model.SignalResult{
			ID:      "chroot_root_differs",
			Status:  model.SignalStatusUnreadable,
			Message: "could not compare this process root with the init process root (needs root)",
		})
	} else if present {
		results = append(results, model.SignalResult{
			ID:      "chroot_root_differs",
			Status:  model.SignalStatusPresent,
			Message: "this process root filesystem differs from the init process root",
		})
	} else {
		results = append(results, model.SignalResult{
			ID:      "chroot_root_differs",
			Status:  model.SignalStatusAbsent,
			Message: "this process shares its root filesystem with init",
		})
	}

	results = append(results, s.boolSignal("live_media_cmdline", func() (bool, bool) { return s.liveMediaSignal() },
		"kernel cmdline carries the live installation media markers",
		"kernel cmdline has no live installation media marker"))

	results = append(results, s.boolSignal("release_file", func() (bool, bool) { return s.fileSignal(releaseFile) },
		releaseFile+" exists",
		releaseFile+" does not exist"))

	results = append(results, s.boolSignal("display_manager_unit", func() (bool, bool) { return s.fileSignal(displayManagerUnit) },
		"a desktop session manager unit is registered",
		"no desktop session manager unit is registered"))

	return results
}

func (s *Service) boolSignal(id string, check func() (present, conclusive bool), presentMsg, absentMsg string) model.SignalResult {
	present, conclusive := check()
	switch {
	case !conclusive:
		return model.SignalResult{ID: id, Status: model.SignalStatusUnreadable, Message: "signal could not be read"}
	case present:
		return model.SignalResult{ID: id, Status: model.SignalStatusPresent, Message: presentMsg}
	default:
		return model.SignalResult{ID: id, Status: model.SignalStatusAbsent, Message: absentMsg}
	}
}

// chrootSignal compares the device and inode of this process root with the
// init process root. Best-effort: reading /proc/1/root requires root, a
// failed read makes the signal inconclusive instead of an error.
func (s *Service) chrootSignal() (present, conclusive bool) {
	initID, err := s.host.PathID(initRootPath)
	if err != nil {
		s.logger.Debugf("Chroot signal inconclusive: %s", err)
		return false, false
	}

	selfID, err := s.host.PathID(selfRootPath)
	if err != nil {
		s.logger.Debugf("Chroot signal inconclusive: %s", err)
		return false, false
	}

	return initID != selfID, true
}

func (s *Service) liveMediaSignal() (present, conclusive bool) {
	cmdline, err := s.host.KernelCmdline()
	if err != nil {
		s.logger.Debugf("Live media signal inconclusive: %s", err)
		return false, false
	}

	for _, marker := range liveMediaMarkers {
		if strings.Contains(cmdline, marker) {
			return true, true
		}
	}
	return false, true
}

func (s *Service) fileSignal(path string) (present, conclusive bool) {
	exists, err := s.host.FileExists(path)
	if err != nil {
		s.logger.Debugf("File signal %s inconclusive: %s", path, err)
		return false, false
	}
	return exists, true
}
