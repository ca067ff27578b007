package uid

import (
	"fmt"
	"strings"
)

// Recognized suffix tokens. Accepted on input and ignored; they carry no
// validation weight.
var parseSuffixes = []string{" HR", " MWST"}

// Parse parses a UID from its textual representation.
//
// Accepted shapes (surrounding whitespace is trimmed first):
//
//   - "CHE-109.322.551"      canonical grouped form
//   - "CHE-109322551"        ungrouped digits
//   - "CHE109322551"         separator omitted
//   - "CHE 109.322.551"      space separator
//   - "CHE-109.322.551 MWST" recognized suffix, ignored
//
// The prefix is matched case-insensitively. Grouping dots must either both
// be present at their fixed positions or both be absent.
//
// Failures wrap exactly one of ErrInvalidPrefix, ErrMalformedDigits,
// ErrLeadingZero, ErrNoValidCheckDigit, or ErrCheckDigitMismatch.
func Parse(s string) (UID, error) {
	body := strings.TrimSpace(s)
	for _, suffix := range parseSuffixes {
		if strings.HasSuffix(body, suffix) {
			body = strings.TrimSuffix(body, suffix)
			break
		}
	}

	if len(body) < prefixChars {
		return UID{}, fmt.Errorf("%w: %q", ErrInvalidPrefix, body)
	}
	prefix := Prefix(strings.ToUpper(body[:prefixChars]))
	if !prefix.IsValid() {
		return UID{}, fmt.Errorf("%w: %q", ErrInvalidPrefix, body[:prefixChars])
	}

	rest := body[prefixChars:]
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == ' ') {
		rest = rest[1:]
	}

	digits, err := extractDigits(rest)
	if err != nil {
		return UID{}, err
	}
	if digits[0] == 0 {
		return UID{}, fmt.Errorf("%w: %q", ErrLeadingZero, body)
	}

	want, err := CalculateCheckDigit(digits[:payloadDigits])
	if err != nil {
		return UID{}, err
	}
	if digits[payloadDigits] != want {
		return UID{}, fmt.Errorf("%w: calculated check digit is [%d]",
			ErrCheckDigitMismatch, want)
	}

	return UID{
		hi:     packQuad(digits[0:4]),
		lo:     packQuad(digits[4:8]),
		check:  digits[payloadDigits],
		prefix: prefix,
	}, nil
}

// MustParse parses a UID from string, panicking on error. This is useful
// for test fixtures and constants where the UID is known valid.
func MustParse(s string) UID {
	u, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("invalid UID: %s: %v", s, err))
	}
	return u
}

// extractDigits reads the 9 digits from either the grouped shape
// "DDD.DDD.DDC" or the ungrouped shape "DDDDDDDDC". Anything else is a
// digit-structure violation.
func extractDigits(s string) ([totalDigits]uint8, error) {
	var digits [totalDigits]uint8

	switch len(s) {
	case totalDigits:
		// Ungrouped: 9 contiguous digits.
		for i := 0; i < totalDigits; i++ {
			d, ok := digitAt(s, i)
			if !ok {
				return digits, fmt.Errorf("%w: non-digit character in %q",
					ErrMalformedDigits, s)
			}
			digits[i] = d
		}
	case totalDigits + 2:
		// Grouped: dots after the 3rd and 6th character.
		if s[3] != '.' || s[7] != '.' {
			return digits, fmt.Errorf("%w: misplaced separator in %q",
				ErrMalformedDigits, s)
		}
		n := 0
		for i := 0; i < len(s); i++ {
			if i == 3 || i == 7 {
				continue
			}
			d, ok := digitAt(s, i)
			if !ok {
				return digits, fmt.Errorf("%w: non-digit character in %q",
					ErrMalformedDigits, s)
			}
			digits[n] = d
			n++
		}
	default:
		return digits, fmt.Errorf("%w: expected %d digits, got %q",
			ErrMalformedDigits, totalDigits, s)
	}

	return digits, nil
}

func digitAt(s string, i int) (uint8, bool) {
	c := s[i]
	if c < '0' || c > '9' {
		return 0, false
	}
	return c - '0', true
}
