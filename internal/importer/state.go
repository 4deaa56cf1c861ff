package importer

import "fmt"

// State is a stage of an import run. A run only moves forward.
type State int

const (
	StateStart State = iota
	StateFetching
	StateExtracting
	StateBackingUp
	StateWriting
	StateReporting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateFetching:
		return "fetching"
	case StateExtracting:
		return "extracting"
	case StateBackingUp:
		return "backing_up"
	case StateWriting:
		return "writing"
	case StateReporting:
		return "reporting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// StageError records the stage in which a run failed.
type StageError struct {
	State State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.State, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
