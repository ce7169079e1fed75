package mealdb

import (
	"context"

	"github.com/ytget/recipe-finder/internal/model"
)

// Searcher defines the interface for the recipe search client.
type Searcher interface {
	// Search returns the recipes matching query. An empty, non-nil slice
	// means the API found nothing.
	Search(ctx context.Context, query string) ([]model.Recipe, error)
}
