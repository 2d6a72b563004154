// Package token issues and verifies the signed, expiring bearer tokens that
// represent a login session.
//
// Tokens are HS256 JWTs carrying a subject, a unique token ID, and an
// absolute expiry. Verification is fully stateless: any process holding the
// signing key can validate a token without touching storage. There is
// deliberately no revocation mechanism; sessions end by expiry, and Renew
// implements a sliding window so active clients stay logged in.
//
// All verification failures collapse into ErrInvalidToken so callers cannot
// probe whether a token was malformed, expired, or forged.
package token
