package mealdb

// Package mealdb is a thin client for the public TheMealDB search endpoint.
// It issues a single GET per call and hands the meal records back unchanged.
// There is no retry, backoff or rate-limit handling.
