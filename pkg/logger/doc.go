// Package logger is a small factory around log/slog: functional options for
// level, format, and static attributes, plus env-driven construction via
// LOG_LEVEL and LOG_FORMAT.
//
// The auth service logs state transitions (registration, login outcomes,
// two-factor toggles) through a logger built here; secrets and password
// hashes are never logged.
package logger
