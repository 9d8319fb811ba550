// Package trackid validates user-entered tracking codes.
package trackid

import (
	"net/url"
	"strings"
	"unicode"
)

// DefaultCodes are the accepted spellings of the demo shipment's code.
var DefaultCodes = []string{
	"455-666-8867",
	"4556668867",
	"455 666 8867",
}

// Normalize removes dashes and whitespace and lowercases the code.
func Normalize(code string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, code)
}

// Validator checks codes against an allow-list after normalization.
type Validator struct {
	allowed map[string]struct{}
}

// NewValidator creates a validator accepting the given codes. With no codes
// DefaultCodes are used.
func NewValidator(codes ...string) *Validator {
	if len(codes) == 0 {
		codes = DefaultCodes
	}
	v := &Validator{allowed: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		v.allowed[Normalize(c)] = struct{}{}
	}
	return v
}

// Validate returns nil when code matches an allowed code.
func (v *Validator) Validate(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrEmptyTrackingID
	}
	if _, ok := v.allowed[Normalize(code)]; !ok {
		return &LookupError{Code: code, Err: ErrUnknownTrackingID}
	}
	return nil
}

// Equal reports whether two codes normalize to the same value.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// FromURL extracts the "id" query parameter from a tracking link. A bare
// query string such as "?id=..." is accepted too.
func FromURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	id := strings.TrimSpace(u.Query().Get("id"))
	return id, id != ""
}
