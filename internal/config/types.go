package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Chance is a probability in [0, 1]. In YAML it may be written as a
// fraction ("1/30"), a percentage ("5%") or a plain number (0.05).
type Chance float64

// OneIn returns the chance 1/n.
func OneIn(n int) Chance {
	return Chance(1.0 / float64(n))
}

// Float64 returns the chance as a plain probability.
func (c Chance) Float64() float64 {
	return float64(c)
}

// String formats the chance as "1/n" when it is an exact reciprocal.
func (c Chance) String() string {
	if c > 0 && c < 1 {
		inv := 1 / float64(c)
		if r := math.Round(inv); math.Abs(inv-r) < 1e-9 {
			return fmt.Sprintf("1/%d", int(r))
		}
	}
	return strconv.FormatFloat(float64(c), 'g', -1, 64)
}

// ParseChance parses a fraction, percentage or decimal probability.
func ParseChance(s string) (Chance, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasSuffix(s, "%"):
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid percentage %q: %w", s, err)
		}
		return Chance(v / 100), nil
	case strings.Contains(s, "/"):
		num, den, _ := strings.Cut(s, "/")
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid fraction %q: %w", s, err)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid fraction %q: %w", s, err)
		}
		if d == 0 {
			return 0, fmt.Errorf("invalid fraction %q: zero denominator", s)
		}
		return Chance(n / d), nil
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid chance %q: %w", s, err)
		}
		return Chance(v), nil
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Chance) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: chance must be a scalar", value.Line)
	}
	v, err := ParseChance(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Chance) MarshalYAML() (any, error) {
	return c.String(), nil
}

// Duration is a time.Duration written in YAML as "40ms", "1s" and so on.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	v, err := time.ParseDuration(strings.TrimSpace(value.Value))
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
