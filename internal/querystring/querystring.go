// Package querystring implements a flat key=value codec used by external
// callers. The cart engine does not consume it.
package querystring

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ErrNestedValue is returned when a value is itself a mapping. Arrays are
// fine, nested objects are not.
var ErrNestedValue = errors.New("please check your params")

// Encode serialises a flat mapping into key=value pairs joined by "&".
// Slice values are joined with commas. Keys are emitted in sorted order so
// the output is deterministic.
func Encode(values map[string]any) (string, error) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		encoded, err := encodeValue(values[key])
		if err != nil {
			return "", fmt.Errorf("key %q: %w", key, err)
		}
		pairs = append(pairs, key+"="+encoded)
	}
	return strings.Join(pairs, "&"), nil
}

// Parse splits the string on "&" and "=". Values containing a comma are
// decoded as string slices.
func Parse(encoded string) map[string]any {
	result := make(map[string]any)
	if encoded == "" {
		return result
	}
	for _, pair := range strings.Split(encoded, "&") {
		key, value, _ := strings.Cut(pair, "=")
		if strings.Contains(value, ",") {
			result[key] = strings.Split(value, ",")
		} else {
			result[key] = value
		}
	}
	return result
}

func encodeValue(value any) (string, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		return "", ErrNestedValue
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			element := rv.Index(i).Interface()
			if reflect.ValueOf(element).Kind() == reflect.Map {
				return "", ErrNestedValue
			}
			parts = append(parts, fmt.Sprint(element))
		}
		return strings.Join(parts, ","), nil
	default:
		return fmt.Sprint(value), nil
	}
}
