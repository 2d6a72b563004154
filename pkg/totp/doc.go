// Package totp implements time-based one-time passwords (RFC 6238) for the
// two-factor authentication flow: secret generation, provisioning URI
// encoding/decoding, and code validation.
//
// Parameters are fixed to the values every mainstream authenticator app
// supports out of the box: 6-digit codes, 30-second periods, HMAC-SHA1.
// Secrets are 160-bit random values carried as unpadded Base32, safe for
// embedding in otpauth:// URIs.
//
// Validation accepts the code for the current 30-second step plus the step
// on either side, so a device whose clock drifts by up to half a minute can
// still enroll and log in. Submitted codes that are not exactly six digits
// are rejected before any HMAC computation.
//
// The URI/SecretFromURI pair exists because enrollment is stateless on the
// server: a freshly generated secret travels to the caller inside the
// provisioning URI and comes back in the enable call together with a proof
// code, so no unconfirmed secret is ever stored.
package totp
