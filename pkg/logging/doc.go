// Package logging provides a thin structured logging layer over log/slog.
//
// Commands initialize it once via InitForCLI and the rest of the codebase
// logs through the leveled helpers (Debug, Info, Warn, Error), tagging each
// entry with the subsystem that produced it. Credential values are never
// passed to this package; callers log URLs and identifiers only.
package logging
