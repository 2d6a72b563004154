// Package userstore persists the single local user record in a YAML
// document on disk.
//
// The store holds at most one record for the lifetime of the system:
// Create enforces the singleton invariant, and Update is the only mutation
// primitive, running the caller's mutator inside the store's critical
// section so that concurrent read-modify-write sequences cannot interleave.
// Writes go through a temp-file-and-rename sequence, so the file on disk is
// always a complete pre- or post-mutation snapshot and state survives
// process restarts.
package userstore
