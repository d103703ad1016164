package types

import (
	"errors"
	"fmt"
	"strings"
)

// Priority classifies how important an envelope is. Reduction scenarios
// only ever touch non-essential envelopes.
type Priority string

const (
	PriorityEssential     Priority = "essential"
	PriorityImportant     Priority = "important"
	PriorityDiscretionary Priority = "discretionary"
)

var ErrInvalidPriority = errors.New("priority must be one of: essential, important, discretionary")

// ParsePriority parses a string into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w, got %q", ErrInvalidPriority, s)
	}

	return p, nil
}

// Valid reports whether the priority is a known value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityEssential, PriorityImportant, PriorityDiscretionary:
		return true
	}

	return false
}

func (p Priority) String() string {
	return string(p)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Priority) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParsePriority(value)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// UnmarshalParam binds a query or URI parameter to a Priority.
func (p *Priority) UnmarshalParam(param string) error {
	if param == "" {
		return nil
	}

	parsed, err := ParsePriority(param)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}
