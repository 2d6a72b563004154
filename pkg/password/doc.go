// Package password wraps bcrypt hashing and verification for the single
// local user account's credential.
//
// The package exposes two operations: Hash, which produces a salted bcrypt
// digest safe for durable storage, and Verify, which checks a plaintext
// candidate against a stored digest. Verify deliberately returns a bare
// boolean so that callers cannot distinguish a malformed stored hash from a
// wrong password, which keeps login error reporting uniform.
package password
