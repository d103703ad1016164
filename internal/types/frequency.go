// Package types implements special types for My Budget Mate.
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Frequency is the interval in which a bill is due or a pay cycle recurs.
type Frequency string

const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencyAnnually    Frequency = "annually"
	FrequencyNone        Frequency = "none"
)

var ErrInvalidFrequency = errors.New("frequency must be one of: weekly, fortnightly, monthly, quarterly, annually, none")

// occurrences is the number of times a frequency occurs per year.
var occurrences = map[Frequency]int64{
	FrequencyWeekly:      52,
	FrequencyFortnightly: 26,
	FrequencyMonthly:     12,
	FrequencyQuarterly:   4,
	FrequencyAnnually:    1,
	FrequencyNone:        0,
}

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return FrequencyNone, fmt.Errorf("%w, got %q", ErrInvalidFrequency, s)
	}

	return f, nil
}

// Valid reports whether the frequency is a known value.
func (f Frequency) Valid() bool {
	_, ok := occurrences[f]
	return ok
}

// PerYear returns how often the frequency occurs in a year.
func (f Frequency) PerYear() decimal.Decimal {
	return decimal.NewFromInt(occurrences[f])
}

// Occurrences returns the occurrences per year as an integer.
func (f Frequency) Occurrences() int64 {
	return occurrences[f]
}

func (f Frequency) String() string {
	return string(f)
}

// Title returns the frequency with the first letter in upper case,
// as used in column headers and display strings.
func (f Frequency) Title() string {
	if f == "" {
		return ""
	}

	return strings.ToUpper(string(f[0])) + string(f[1:])
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Unknown frequencies are rejected on unmarshaling so that they can
// never reach the contribution math.
func (f *Frequency) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*f = FrequencyNone
		return nil
	}

	parsed, err := ParseFrequency(value)
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}

// UnmarshalParam binds a query or URI parameter to a Frequency.
func (f *Frequency) UnmarshalParam(p string) error {
	if p == "" {
		*f = FrequencyNone
		return nil
	}

	parsed, err := ParseFrequency(p)
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}
