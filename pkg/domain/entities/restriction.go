package entities

import "fmt"

// RestrictionKind distinguishes the two ways a trade rule can block a flow
type RestrictionKind int

const (
	// MadeIn blocks goods manufactured in the restricted country
	MadeIn RestrictionKind = iota
	// RoutedThrough blocks goods routed via a hub in the restricted country
	RoutedThrough
)

// String method for RestrictionKind enum
func (k RestrictionKind) String() string {
	switch k {
	case MadeIn:
		return "MADE_IN"
	case RoutedThrough:
		return "ROUTED_THROUGH"
	default:
		return "Unknown"
	}
}

// ParseRestrictionKind parses the wire form of a restriction kind
func ParseRestrictionKind(s string) (RestrictionKind, error) {
	switch s {
	case "MADE_IN":
		return MadeIn, nil
	case "ROUTED_THROUGH":
		return RoutedThrough, nil
	default:
		return 0, fmt.Errorf("unknown restriction kind: %q", s)
	}
}

// MarshalText renders the wire form, so JSON and YAML carry MADE_IN rather
// than the enum ordinal
func (k RestrictionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the wire form
func (k *RestrictionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseRestrictionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Restriction is a destination-scoped trade rule blocking a country as a
// manufacturing origin or as a routing hub location.
type Restriction struct {
	Destination CountryCode
	Restricted  CountryCode
	Kind        RestrictionKind
	Reason      string
}

// BlocksOrigin reports whether this rule blocks goods made in the given country
// when shipping to the rule's destination.
func (r Restriction) BlocksOrigin(factoryCountry CountryCode) bool {
	return r.Kind == MadeIn && r.Restricted == factoryCountry
}

// BlocksHub reports whether this rule blocks routing via a hub located in the
// given country when shipping to the rule's destination.
func (r Restriction) BlocksHub(hubCountry CountryCode) bool {
	return r.Kind == RoutedThrough && r.Restricted == hubCountry
}
