package thumbnail

// Package thumbnail fetches recipe card images. Fetches run with bounded
// parallelism and a small token bucket so a result page never opens more
// than a handful of image connections at once. A failed image falls back to
// the placeholder and never fails the search that produced the card.
