package search

// Package search owns the search action: it keeps the window's ephemeral
// state, allows one request in flight at a time, runs the request in the
// background and reports every state change through an update callback.
