package model

import "time"

// SearchState is the ephemeral state of the search window. A copy is handed
// to listeners on every change.
type SearchState struct {
	ID          string
	Query       string
	Status      SearchStatus
	Recipes     []Recipe
	HasSearched bool
	Error       string // static display message when Status is Error
	StartedAt   time.Time
	FinishedAt  time.Time
}

// NewSearchState returns the state of a window that has not searched yet
func NewSearchState() SearchState {
	return SearchState{
		Status:  SearchStatusIdle,
		Recipes: []Recipe{},
	}
}

// Count returns the number of recipes in the current result list
func (s SearchState) Count() int {
	return len(s.Recipes)
}

// IsLoading reports whether a request is in flight
func (s SearchState) IsLoading() bool {
	return s.Status.IsActive()
}

// HasError reports whether the last search failed
func (s SearchState) HasError() bool {
	return s.Error != ""
}

// ShowEmpty reports whether the empty-state message should be rendered:
// a search happened, finished without error and returned nothing.
func (s SearchState) ShowEmpty() bool {
	return s.HasSearched && !s.IsLoading() && !s.HasError() && s.Count() == 0
}

// ShowResults reports whether the result heading and grid should be rendered
func (s SearchState) ShowResults() bool {
	return s.Count() > 0
}

// Duration returns how long the search took, or zero while it is running
func (s SearchState) Duration() time.Duration {
	if s.StartedAt.IsZero() || s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// Clone returns a copy whose recipe slice does not alias the original
func (s SearchState) Clone() SearchState {
	c := s
	c.Recipes = make([]Recipe, len(s.Recipes))
	copy(c.Recipes, s.Recipes)
	return c
}
