package querystring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeScalars(t *testing.T) {
	encoded, err := Encode(map[string]any{
		"name":       "Ana Silva",
		"profession": "developer",
	})
	require.NoError(t, err)
	require.Equal(t, "name=Ana Silva&profession=developer", encoded)
}

func TestEncodeJoinsSlicesWithCommas(t *testing.T) {
	encoded, err := Encode(map[string]any{
		"abilities": []string{"js", "go"},
		"name":      "Ana",
	})
	require.NoError(t, err)
	require.Equal(t, "abilities=js,go&name=Ana", encoded)
}

func TestEncodeRejectsNestedMaps(t *testing.T) {
	_, err := Encode(map[string]any{
		"name": map[string]any{"first": "Ana"},
	})
	require.ErrorIs(t, err, ErrNestedValue)

	_, err = Encode(map[string]any{
		"items": []any{map[string]any{"nested": true}},
	})
	require.ErrorIs(t, err, ErrNestedValue)
}

func TestParse(t *testing.T) {
	parsed := Parse("name=Ana&profession=developer")
	require.Equal(t, map[string]any{
		"name":       "Ana",
		"profession": "developer",
	}, parsed)
}

func TestParseDecodesCommaValuesAsSlices(t *testing.T) {
	parsed := Parse("abilities=js,go&name=Ana")
	require.Equal(t, map[string]any{
		"abilities": []string{"js", "go"},
		"name":      "Ana",
	}, parsed)
}

func TestParseEmptyString(t *testing.T) {
	require.Empty(t, Parse(""))
}

func TestRoundTrip(t *testing.T) {
	original := map[string]any{
		"abilities": []string{"js", "go"},
		"name":      "Ana",
	}
	encoded, err := Encode(original)
	require.NoError(t, err)
	require.Equal(t, original, Parse(encoded))
}
