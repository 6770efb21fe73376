package model

// SignalStatus represents the status of a single environment detection signal.
type SignalStatus string

const (
	// SignalStatusPresent indicates the signal was detected.
	SignalStatusPresent SignalStatus = "present"
	// SignalStatusAbsent indicates the signal was checked and not detected.
	SignalStatusAbsent SignalStatus = "absent"
	// SignalStatusUnreadable indicates the signal could not be read (e.g.
	// missing privileges), so it is inconclusive.
	SignalStatusUnreadable SignalStatus = "unreadable"
)

// SignalResult represents the result of evaluating one detection signal.
type SignalResult struct {
	ID      string       // Unique identifier for the signal (e.g. "chroot_root_differs").
	Message string       // Human-readable description of the result.
	Status  SignalStatus // Status of the signal.
}
