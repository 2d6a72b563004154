// Package auth is the identity and session core of the personal server: it
// manages the single local user account, its password, optional TOTP-based
// two-factor authentication, and the bearer tokens that authorize API
// access.
//
// The service is the only component that mutates the user store, and every
// mutation funnels through the store's atomic update primitive, so the
// record moves between its three states (unregistered, registered with 2FA
// off, registered with 2FA on) without ever exposing a partial write.
//
// Two-factor enrollment is stateless on the server side: GenerateTotpUri
// hands the caller a fresh secret inside a provisioning URI, and Enable2FA
// commits it only when the caller returns the URI together with a valid
// code, proving the authenticator was actually set up.
//
// Error semantics follow a strict taxonomy (see errors.go). Notably,
// ErrInvalidLogin deliberately conflates unknown-user and wrong-password,
// and ErrInvalidToken gives no hint whether a session token was malformed,
// expired, or forged.
//
// The transport layer maps these operations onto its RPC envelope; nothing
// in this package knows about HTTP.
package auth
