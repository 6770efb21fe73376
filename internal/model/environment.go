package model

// Environment represents the classified execution context of the host at the
// moment the resolver runs. It is recomputed on every invocation and never
// persisted.
type Environment string

const (
	// EnvironmentLiveMedia indicates the host booted from the Arch live
	// installation media.
	EnvironmentLiveMedia Environment = "live-media"
	// EnvironmentChroot indicates the process runs inside a chroot of the
	// target system.
	EnvironmentChroot Environment = "chroot"
	// EnvironmentInstalledNoDesktop indicates an installed system without a
	// desktop session manager.
	EnvironmentInstalledNoDesktop Environment = "installed-no-desktop"
	// EnvironmentInstalledWithDesktop indicates an installed system with a
	// desktop session manager registered.
	EnvironmentInstalledWithDesktop Environment = "installed-with-desktop"
	// EnvironmentUnknown indicates the host signals were ambiguous or
	// contradictory and no classification could be made.
	EnvironmentUnknown Environment = "unknown"
)
