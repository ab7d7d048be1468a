// Package analysis orchestrates CSV analysis requests.
//
// The package composes the pure engine (parsing, type inference, statistics,
// Markdown rendering) with its two external collaborators: a token estimator
// and a persistence repository. The Service is the single entry point used by
// the web layer; it is stateless across calls and safe for concurrent use.
//
// The Analysis record and its column statistics are constructed once per
// request and are read-only afterwards. The repository assigns identity on
// Save and returns a fully populated copy; nothing mutates a stored record
// in place.
package analysis
