package engine

import "encoding/json"

// State is the lifecycle position of a facet:
// Unassigned, then Loading, then Playing or Holding, then Completed or Failed, then Loading again.
type State int

const (
	StateUnassigned State = iota
	StateLoading
	StatePlaying
	StateHolding
	StateCompleted
	StateFailed
)

var stateNames = [...]string{
	StateUnassigned: "unassigned",
	StateLoading:    "loading",
	StatePlaying:    "playing",
	StateHolding:    "holding",
	StateCompleted:  "completed",
	StateFailed:     "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
