// Package logging builds the slog loggers used across marquee.
//
// Two output formats are supported: a colorized console handler for
// interactive runs and a JSON handler for captured logs. Construction goes
// through Options (or config defaults) so commands and the API server share
// level parsing, multi-writer output, and attribute helpers.
package logging
