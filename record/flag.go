package record

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Flag is a tri-state boolean. The zero value means the field was absent,
// which differs from an explicit false for publish flags.
type Flag uint8

const (
	FlagUnset Flag = iota
	FlagTrue
	FlagFalse
)

// FlagOf converts a bool.
func FlagOf(b bool) Flag {
	if b {
		return FlagTrue
	}
	return FlagFalse
}

// IsTrue reports an explicit true.
func (f Flag) IsTrue() bool { return f == FlagTrue }

// IsFalse reports an explicit false.
func (f Flag) IsFalse() bool { return f == FlagFalse }

// IsSet reports whether a value was given.
func (f Flag) IsSet() bool { return f != FlagUnset }

// Or returns the flag's value, or def when unset.
func (f Flag) Or(def bool) bool {
	if f == FlagUnset {
		return def
	}
	return f == FlagTrue
}

// IsZero lets yaml omitempty skip unset flags.
func (f Flag) IsZero() bool { return f == FlagUnset }

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flag) UnmarshalYAML(n *yaml.Node) error {
	if n.Tag == "!!null" {
		*f = FlagUnset
		return nil
	}
	var b bool
	if err := n.Decode(&b); err != nil {
		return errors.Wrapf(err, "line %d: expected a boolean", n.Line)
	}
	*f = FlagOf(b)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Flag) MarshalYAML() (any, error) {
	if f == FlagUnset {
		return nil, nil
	}
	return f == FlagTrue, nil
}

// Unpublished reports whether a publish flag is explicitly false.
func Unpublished(publish Flag) bool { return publish.IsFalse() }
