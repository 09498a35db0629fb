// Package logger provides the colored slog handler used for diagnostics.
//
// User-facing progress is reported through download.ProgressEvent; this
// logger carries the debug trail behind it (delays, request statuses,
// archive sizes) and is silent below Info unless verbose output is on.
package logger
