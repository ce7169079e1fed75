package search

import (
	"github.com/ytget/recipe-finder/internal/model"
)

// Runner defines the search service as seen by the window and the CLI.
type Runner interface {
	SetUpdateCallback(func(model.SearchState))

	// Submit starts a search action for query
	Submit(query string) (model.SearchState, error)

	// State returns a snapshot of the current search state
	State() model.SearchState

	// Wait blocks until the in-flight search, if any, has finished
	Wait()
}
