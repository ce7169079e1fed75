package model

// SearchStatus represents the lifecycle of a single search action
type SearchStatus string

const (
	// SearchStatusIdle means no search has been issued yet
	SearchStatusIdle SearchStatus = "Idle"

	// SearchStatusLoading means the request is in flight
	SearchStatusLoading SearchStatus = "Loading"

	// SearchStatusDone means the request finished and results are available
	SearchStatusDone SearchStatus = "Done"

	// SearchStatusError means the request failed
	SearchStatusError SearchStatus = "Error"
)

// String returns the string representation of SearchStatus
func (ss SearchStatus) String() string {
	return string(ss)
}

// IsActive returns true while a request is in flight
func (ss SearchStatus) IsActive() bool {
	return ss == SearchStatusLoading
}

// IsFinished returns true if the search completed (with results or an error)
func (ss SearchStatus) IsFinished() bool {
	return ss == SearchStatusDone || ss == SearchStatusError
}
