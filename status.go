package bespokefit

// Status indicates where a collection workflow stage is in its lifecycle.
// Stages start at StatusPrepared and are advanced by the execution driver.
type Status string

const (
	StatusPrepared  Status = "prepared"
	StatusReady     Status = "ready"
	StatusRunning   Status = "running"
	StatusCollected Status = "collected"
	StatusError     Status = "error"
	StatusCanceled  Status = "canceled"
)

// IsComplete reports whether the status indicates that reference data has
// been collected and results may be read.
func (s Status) IsComplete() bool {
	return s == StatusCollected
}

// IsTerminal reports whether the stage will not be advanced further.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCollected, StatusError, StatusCanceled:
		return true
	default:
		return false
	}
}
