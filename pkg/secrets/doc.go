// Package secrets manages the process-wide token signing key: random
// generation and load-or-generate persistence across daemon restarts.
//
// The key lives in a 0600 file under the daemon's data directory so that
// sessions survive a restart. It is constructed once at startup and passed
// into the token service rather than read as ambient global state.
package secrets
