package utm

import (
	"fmt"
	"strings"
)

// Hemisphere represents the hemisphere, north or south. It selects the
// false northing used by Inverse.
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "north"
	case HemisphereSouth:
		return "south"
	}
	return "invalid"
}

// ParseHemisphere accepts "n", "north", "s" or "south" in any case.
func ParseHemisphere(s string) (Hemisphere, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return HemisphereNorth, nil
	case "s", "south":
		return HemisphereSouth, nil
	}
	return HemisphereInvalid, fmt.Errorf("%w: %q", ErrHemisphere, s)
}

// MarshalText implements encoding.TextMarshaler.
func (h Hemisphere) MarshalText() ([]byte, error) {
	if h != HemisphereNorth && h != HemisphereSouth {
		return nil, ErrHemisphere
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hemisphere) UnmarshalText(text []byte) error {
	v, err := ParseHemisphere(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
