package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Record is a single row keyed by field name.
type Record map[string]any

// Get returns the value of a field, zero Value when absent.
func (rec Record) Get(field string) Value {
	return Value{Raw: rec[field]}
}

// Value wraps a field value and provides type conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string.
func (v Value) String() string {
	if v.Raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Float returns the value as a float64, widening any numeric kind.
func (v Value) Float() (float64, error) {
	f, ok := number(v.Raw)
	if !ok {
		return 0, errors.Errorf("value is not a number: %T", v.Raw)
	}
	return f, nil
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.Raw.(bool)
	if !ok {
		return false, errors.Errorf("value is not a bool: %T", v.Raw)
	}
	return b, nil
}

// Time returns the value as a time.Time.
func (v Value) Time() (time.Time, error) {
	t, ok := v.Raw.(time.Time)
	if !ok {
		return time.Time{}, errors.Errorf("value is not a time.Time: %T", v.Raw)
	}
	return t, nil
}

// Compare orders two values, returning -1, 0 or 1.
//
// Nil sorts before anything else. Numbers compare numerically whatever their
// kind, strings lexically, bools false first and times chronologically.
// Values of differing kinds compare by their string forms, so a column mixing
// strings and numbers has no meaningful order.
func (v Value) Compare(other Value) int {

	switch {
	case v.Raw == nil && other.Raw == nil:
		return 0
	case v.Raw == nil:
		return -1
	case other.Raw == nil:
		return 1
	}

	if a, ok := number(v.Raw); ok {
		if b, ok := number(other.Raw); ok {
			return compareOrdered(a, b)
		}
	}

	switch a := v.Raw.(type) {
	case string:
		if b, ok := other.Raw.(string); ok {
			return strings.Compare(a, b)
		}
	case bool:
		if b, ok := other.Raw.(bool); ok {
			return compareBools(a, b)
		}
	case time.Time:
		if b, ok := other.Raw.(time.Time); ok {
			return a.Compare(b)
		}
	}

	return strings.Compare(v.String(), other.String())
}

// Contains reports whether the lower-cased string form holds the lower-cased needle.
func (v Value) Contains(needle string) bool {
	return strings.Contains(strings.ToLower(v.String()), strings.ToLower(needle))
}

// unexported

func number(raw any) (float64, bool) {
	switch n := raw.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func compareOrdered(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareBools(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}
