// Package logging provides a unified logging interface for osstat.
// It abstracts the underlying logging implementation, allowing consistent logging
// across the sampler, the display surface and the hosts while supporting
// multiple backends.
package logging
