package enum

import (
	"fmt"
	"reflect"
)

var registry = map[string]map[string]any{}

// New registers a value of a string-based enum type and returns it, so
// declarations read `var Movie = enum.New(ContentType("movie"))`.
func New[T ~string](value T) T {
	name := reflect.TypeOf(value).Name()
	if registry[name] == nil {
		registry[name] = map[string]any{}
	}

	registry[name][string(value)] = value
	return value
}

// ToEnum parses s into the enum type T, failing on values that were never
// registered with New.
func ToEnum[T ~string](s string) (T, error) {
	var zero T
	values, ok := registry[reflect.TypeOf(zero).Name()]
	if !ok {
		return zero, fmt.Errorf("not found enum type %T", zero)
	}

	value, ok := values[s]
	if !ok {
		return zero, fmt.Errorf("not found value %s in enum %T", s, zero)
	}

	return value.(T), nil
}
