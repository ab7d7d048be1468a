// Package engine implements the CSV analysis engine: parsing raw delimited
// text into a header plus data rows, inferring a type for each column,
// computing per-column descriptive statistics, and rendering the parsed table
// as a GitHub-flavored Markdown table.
//
// The package is a pure, stateless transform over a single input string. It
// performs no I/O, holds no mutable shared state, and every function is safe
// to call from concurrent requests. Persistence, request validation, and token
// estimation are collaborators owned by the caller.
//
// The dialect is deliberately minimal: rows are separated by newlines and
// cells by commas, with no quoting or escaping. Every data row must have
// exactly as many cells as the header; anything else is rejected with a
// [MalformedInputError] before any statistics work begins.
package engine
