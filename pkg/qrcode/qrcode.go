package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent         = errors.New("qrcode: content cannot be empty")
	ErrInvalidRecoveryLevel = errors.New("qrcode: invalid recovery level")
	ErrFailedToGenerate     = errors.New("qrcode: failed to generate image")
)

// RecoveryLevel selects how much of the printed code may be damaged or
// obscured while remaining scannable. Higher levels grow the image.
type RecoveryLevel int

const (
	RecoveryLow RecoveryLevel = iota
	RecoveryMedium
	RecoveryHigh
	RecoveryHighest
)

func (l RecoveryLevel) encode() (skipqrcode.RecoveryLevel, error) {
	switch l {
	case RecoveryLow:
		return skipqrcode.Low, nil
	case RecoveryMedium:
		return skipqrcode.Medium, nil
	case RecoveryHigh:
		return skipqrcode.High, nil
	case RecoveryHighest:
		return skipqrcode.Highest, nil
	default:
		return 0, ErrInvalidRecoveryLevel
	}
}

// DefaultSize is the image edge length in pixels used when no size is given.
// 256px scans reliably on phone cameras at typical screen densities.
const DefaultSize = 256

// Generate renders content as a PNG QR code image at medium recovery, the
// right trade-off for a code displayed on screen rather than printed.
func Generate(content string, size int) ([]byte, error) {
	return GenerateWithRecovery(content, size, RecoveryMedium)
}

// GenerateWithRecovery renders content as a PNG QR code image with an
// explicit recovery level.
func GenerateWithRecovery(content string, size int, level RecoveryLevel) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	encodeLevel, err := level.encode()
	if err != nil {
		return nil, err
	}
	png, err := skipqrcode.Encode(content, encodeLevel, size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	return png, nil
}

// GenerateDataURI renders content as a QR code and returns it as a
// data:image/png;base64 URI embeddable directly in an <img> src attribute.
func GenerateDataURI(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
