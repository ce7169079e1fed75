package model

// Package model defines the data structures shared across the app: recipe
// records passed through from the search API, the search state shown by the
// window, and the search status enum. Records are kept as the API sends them;
// helpers only derive display values.
