package uid

import "fmt"

// Digit weights as defined in eCH-0097 section 2.4.2, applied to the 8
// payload digits left to right.
var checkDigitWeights = [payloadDigits]uint32{5, 4, 3, 2, 7, 6, 5, 4}

// CalculateCheckDigit computes the check digit for the given 8 payload
// digits using the eCH-0097 weighted modulo-11 algorithm.
//
// A weighted sum remainder of 11 maps to check digit 0. A remainder of 10
// has no valid check digit: ErrNoValidCheckDigit is returned and the
// payload can never form a valid UID.
func CalculateCheckDigit(payload []uint8) (uint8, error) {
	if len(payload) != payloadDigits {
		return 0, fmt.Errorf("%w: payload must have %d digits, got %d",
			ErrMalformedDigits, payloadDigits, len(payload))
	}

	var sum uint32
	for i, d := range payload {
		if d > 9 {
			return 0, fmt.Errorf("%w: digit %d out of range at position %d",
				ErrMalformedDigits, d, i)
		}
		sum += uint32(d) * checkDigitWeights[i]
	}

	switch n := 11 - sum%11; n {
	case 11:
		return 0, nil
	case 10:
		return 0, ErrNoValidCheckDigit
	default:
		return uint8(n), nil
	}
}
