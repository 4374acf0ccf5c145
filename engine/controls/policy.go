package controls

import "fmt"

// Policy is an on/off switch that carries a strength only while on.
// The zero value is disabled.
type Policy struct {
	enabled  bool
	strength float32
}

// Disabled returns a switched-off policy.
func Disabled() Policy {
	return Policy{}
}

// Enabled returns a switched-on policy with the given strength.
//
// Parameters:
//   - strength: speed, factor or exponent, depending on what the policy controls
//
// Returns:
//   - Policy: the enabled policy
func Enabled(strength float32) Policy {
	return Policy{enabled: true, strength: strength}
}

// Strength returns the strength and true when enabled, or 0 and false when disabled.
func (p Policy) Strength() (float32, bool) {
	if !p.enabled {
		return 0, false
	}
	return p.strength, true
}

// IsEnabled reports whether the policy is on.
func (p Policy) IsEnabled() bool {
	return p.enabled
}

func (p Policy) String() string {
	if !p.enabled {
		return "Disabled"
	}
	return fmt.Sprintf("Enabled(%g)", p.strength)
}
