package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCheckDigit(t *testing.T) {
	t.Run("known payloads", func(t *testing.T) {
		tests := []struct {
			payload []uint8
			want    uint8
		}{
			{[]uint8{1, 0, 9, 3, 2, 2, 5, 5}, 1},
			{[]uint8{1, 0, 0, 0, 0, 2, 0, 0}, 5},
			{[]uint8{1, 2, 3, 4, 5, 6, 7, 8}, 8},
			{[]uint8{1, 1, 1, 1, 1, 1, 1, 1}, 8},
			{[]uint8{9, 9, 9, 9, 9, 9, 9, 9}, 6},
		}
		for _, tc := range tests {
			got, err := CalculateCheckDigit(tc.payload)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "payload %v", tc.payload)
		}
	})

	t.Run("remainder of 11 maps to check digit 0", func(t *testing.T) {
		// 1*5 + 4*7 = 33, divisible by 11.
		got, err := CalculateCheckDigit([]uint8{1, 0, 0, 0, 4, 0, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, uint8(0), got)
	})

	t.Run("forbidden remainder has no check digit", func(t *testing.T) {
		// 1*5 + 1*7 = 12, remainder 1, 11-1 = 10.
		_, err := CalculateCheckDigit([]uint8{1, 0, 0, 0, 1, 0, 0, 0})
		assert.ErrorIs(t, err, ErrNoValidCheckDigit)
	})

	t.Run("rejects wrong digit count", func(t *testing.T) {
		_, err := CalculateCheckDigit([]uint8{1, 2, 3})
		assert.ErrorIs(t, err, ErrMalformedDigits)

		_, err = CalculateCheckDigit([]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9})
		assert.ErrorIs(t, err, ErrMalformedDigits)
	})

	t.Run("rejects out-of-range digit", func(t *testing.T) {
		_, err := CalculateCheckDigit([]uint8{1, 0, 0, 0, 0, 0, 0, 12})
		assert.ErrorIs(t, err, ErrMalformedDigits)
	})
}
