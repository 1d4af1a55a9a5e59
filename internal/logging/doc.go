// Package logging provides a unified logging interface for fibmodes.
// It abstracts the underlying zerolog logger so components log structured
// fields without depending on the backend directly.
package logging
