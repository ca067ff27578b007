// Package uid implements parsing, validation, and formatting of the Swiss
// business identifier (UID, Unternehmens-Identifikationsnummer) as defined
// by the eCH-0097 data standard.
//
// A UID consists of a prefix (normally "CHE"), 8 payload digits, and a
// single check digit derived from a weighted modulo-11 checksum over the
// payload. The canonical textual form is "CHE-109.322.551".
//
// # Core Concepts
//
//  1. UID: Immutable, validated value type holding the 9 digits in a
//     compact nibble-packed representation. Every non-zero UID is
//     guaranteed to satisfy the eCH-0097 structural and checksum rules.
//
//  2. Parsing: Parse accepts the canonical grouped form, the ungrouped
//     form ("CHE-109322551"), and an optional " HR" or " MWST" suffix
//     which is ignored during validation.
//
//  3. Rendering: String returns the canonical form; HRString and
//     MWSTString append the commercial-register and VAT suffixes.
//
// # Usage Examples
//
//	u, err := uid.Parse("CHE-109.322.551")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	u.String()     // "CHE-109.322.551"
//	u.MWSTString() // "CHE-109.322.551 MWST"
//	u.CheckDigit() // 1
//
// Parse failures carry a sentinel error identifying the exact rule that
// was violated:
//
//	_, err := uid.Parse("CHE-009.322.551")
//	errors.Is(err, uid.ErrLeadingZero) // true
//
// # Database and API Integration
//
// UID implements json.Marshaler, json.Unmarshaler, sql.Scanner, and
// driver.Valuer, storing the canonical string form:
//
//	type Company struct {
//	    Name string  `json:"name"`
//	    UID  uid.UID `json:"uid"`
//	}
//
// The package only checks syntactic and checksum validity. It does not
// verify that a UID is registered or active in any government registry.
package uid
