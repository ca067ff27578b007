package uid

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	prefixChars   = 3
	payloadDigits = 8
	totalDigits   = payloadDigits + 1
)

// Prefix identifies the registry namespace of a UID.
type Prefix string

const (
	// PrefixCHE is the standard prefix for Swiss business entities. It is
	// the canonical prefix and the one used by NewRandom.
	PrefixCHE Prefix = "CHE"

	// PrefixADM is the prefix used for Swiss administrative units.
	PrefixADM Prefix = "ADM"
)

// ValidPrefixes returns all recognized UID prefixes.
func ValidPrefixes() []Prefix {
	return []Prefix{PrefixCHE, PrefixADM}
}

// IsValid returns true if this is a recognized UID prefix.
func (p Prefix) IsValid() bool {
	switch p {
	case PrefixCHE, PrefixADM:
		return true
	default:
		return false
	}
}

// String returns the string representation of the prefix.
func (p Prefix) String() string {
	return string(p)
}

// UID is a validated Swiss business identifier per eCH-0097: 8 payload
// digits plus a trailing check digit, e.g. "CHE-109.322.551".
//
// The payload is stored as two nibble-packed uint16 values (4 digits each,
// most significant first), keeping each instance at a fixed, minimal size.
// UIDs are immutable once created: the only constructors are Parse, New,
// and NewRandom, all of which enforce the checksum invariant, so a
// non-zero UID is always well-formed.
type UID struct {
	hi     uint16
	lo     uint16
	check  uint8
	prefix Prefix
}

// New constructs a UID from a prefix and 8 payload digits, computing the
// check digit. It fails with ErrLeadingZero if the first digit is zero and
// with ErrNoValidCheckDigit if the payload falls on the forbidden checksum
// remainder.
func New(prefix Prefix, payload [8]uint8) (UID, error) {
	if !prefix.IsValid() {
		return UID{}, fmt.Errorf("%w: %q", ErrInvalidPrefix, string(prefix))
	}
	if payload[0] == 0 {
		return UID{}, ErrLeadingZero
	}
	check, err := CalculateCheckDigit(payload[:])
	if err != nil {
		return UID{}, err
	}
	return UID{
		hi:     packQuad(payload[0:4]),
		lo:     packQuad(payload[4:8]),
		check:  check,
		prefix: prefix,
	}, nil
}

// Prefix returns the UID's registry prefix.
func (u UID) Prefix() Prefix {
	return u.prefix
}

// CheckDigit returns the check digit stored at construction time. It is
// never recomputed: a constructed UID is the single source of truth for
// its own check digit.
func (u UID) CheckDigit() uint8 {
	return u.check
}

// Payload returns the 8 payload digits, most significant first.
func (u UID) Payload() [8]uint8 {
	a := unpackQuad(u.hi)
	b := unpackQuad(u.lo)
	var out [8]uint8
	copy(out[0:4], a[:])
	copy(out[4:8], b[:])
	return out
}

// Digits returns all 9 digits: the payload followed by the check digit.
func (u UID) Digits() [9]uint8 {
	p := u.Payload()
	var out [9]uint8
	copy(out[0:8], p[:])
	out[8] = u.check
	return out
}

// IsZero returns true if this is the zero UID (no fields set).
func (u UID) IsZero() bool {
	return u == UID{}
}

// Equal returns true if two UIDs have the same prefix and digit sequence.
func (u UID) Equal(other UID) bool {
	return u == other
}

// Compare orders UIDs by their digit sequence; the prefix breaks ties
// between equal digit sequences. It returns -1, 0, or 1.
func (u UID) Compare(other UID) int {
	if c := compareUint32(u.number(), other.number()); c != 0 {
		return c
	}
	return strings.Compare(string(u.prefix), string(other.prefix))
}

// number collapses the packed digits into one orderable value. BCD packing
// preserves digit-sequence order under numeric comparison.
func (u UID) number() uint32 {
	return uint32(u.hi)<<16 | uint32(u.lo)
}

func compareUint32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String returns the canonical grouped representation, e.g.
// "CHE-109.322.551". The zero UID renders as the empty string.
func (u UID) String() string {
	if u.IsZero() {
		return ""
	}
	d := u.Payload()
	return fmt.Sprintf("%s-%d%d%d.%d%d%d.%d%d%d",
		u.prefix, d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], u.check)
}

// HRString returns the commercial-register (Handelsregister) form:
// the canonical representation followed by " HR".
func (u UID) HRString() string {
	if u.IsZero() {
		return ""
	}
	return u.String() + " HR"
}

// MWSTString returns the VAT (Mehrwertsteuer) form: the canonical
// representation followed by " MWST".
func (u UID) MWSTString() string {
	if u.IsZero() {
		return ""
	}
	return u.String() + " MWST"
}

// DebugString returns a diagnostic rendering with the check digit
// bracketed, e.g. "CHE-109.322.55[1]", making the checksum relationship
// visible. It is not a parse target.
func (u UID) DebugString() string {
	if u.IsZero() {
		return ""
	}
	d := u.Payload()
	return fmt.Sprintf("%s-%d%d%d.%d%d%d.%d%d[%d]",
		u.prefix, d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], u.check)
}

// MarshalJSON implements json.Marshaler.
// UIDs are serialized as canonical strings: "CHE-109.322.551"
func (u UID) MarshalJSON() ([]byte, error) {
	if u.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(u.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *UID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("UID must be a string: %w", err)
	}
	if s == "" || s == "null" {
		*u = UID{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Scan implements sql.Scanner for database reading.
// Supports string and []byte input from database.
func (u *UID) Scan(value interface{}) error {
	if value == nil {
		*u = UID{}
		return nil
	}

	switch v := value.(type) {
	case string:
		if v == "" {
			*u = UID{}
			return nil
		}
		parsed, err := Parse(v)
		if err != nil {
			return fmt.Errorf("cannot scan string into UID: %w", err)
		}
		*u = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*u = UID{}
			return nil
		}
		parsed, err := Parse(string(v))
		if err != nil {
			return fmt.Errorf("cannot scan bytes into UID: %w", err)
		}
		*u = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into UID", value)
	}
}

// Value implements driver.Valuer for database writing.
// Returns nil for the zero UID, the canonical string otherwise.
func (u UID) Value() (driver.Value, error) {
	if u.IsZero() {
		return nil, nil
	}
	return u.String(), nil
}
