package uid

import "errors"

// Parse and construction failures wrap one of these sentinel errors, so
// callers can classify a rejection with errors.Is.
var (
	// ErrInvalidPrefix indicates the leading prefix token is missing or is
	// not a recognized UID prefix.
	ErrInvalidPrefix = errors.New("invalid UID prefix")

	// ErrMalformedDigits indicates a wrong digit count, a non-digit
	// character, or a grouping separator in the wrong position.
	ErrMalformedDigits = errors.New("malformed UID digits")

	// ErrLeadingZero indicates the first payload digit is zero, which
	// eCH-0097 forbids.
	ErrLeadingZero = errors.New("leading zero is not allowed")

	// ErrNoValidCheckDigit indicates the payload's weighted checksum falls
	// on the forbidden remainder: no check digit exists for this payload,
	// so no 9-digit UID with it can ever be valid.
	ErrNoValidCheckDigit = errors.New("no valid check digit exists for this payload")

	// ErrCheckDigitMismatch indicates the supplied trailing digit does not
	// equal the check digit computed from the payload.
	ErrCheckDigitMismatch = errors.New("mismatched check digit")
)
