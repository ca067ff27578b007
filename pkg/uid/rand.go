package uid

import "math/rand"

// NewRandom generates a random valid UID with the CHE prefix. The first
// payload digit is drawn from 1-9, the rest from 0-9, and the check digit
// is computed.
//
// If the drawn payload lands on the forbidden checksum remainder, the
// first digit is nudged by one and the check digit recomputed. The nudge
// shifts the weighted sum by 5, which can never land on the forbidden
// remainder again, so the result is always valid.
func NewRandom() UID {
	var payload [8]uint8
	payload[0] = uint8(1 + rand.Intn(9))
	for i := 1; i < payloadDigits; i++ {
		payload[i] = uint8(rand.Intn(10))
	}

	check, err := CalculateCheckDigit(payload[:])
	if err != nil {
		if payload[0] <= 1 {
			payload[0]++
		} else {
			payload[0]--
		}
		check, _ = CalculateCheckDigit(payload[:])
	}

	return UID{
		hi:     packQuad(payload[0:4]),
		lo:     packQuad(payload[4:8]),
		check:  check,
		prefix: PrefixCHE,
	}
}
