package model

// Status is the terminal status of a run.
type Status string

const (
	// StatusOK is reported when every service was processed.
	StatusOK Status = "ok"
	// StatusCritical is reported when the run was aborted.
	StatusCritical Status = "critical"
)

// Result is the terminal report of a run.
type Result struct {
	Status Status
	// Message is only set on critical results.
	Message string
	// Cause is the unprefixed message of the error that aborted the run.
	Cause string
	// Emitted is the number of lines written before the run finished.
	Emitted int
}

// OK returns true if the run finished without errors.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
