// Package qrcode renders QR code images, used during two-factor enrollment
// to present the TOTP provisioning URI for scanning by an authenticator app.
package qrcode
