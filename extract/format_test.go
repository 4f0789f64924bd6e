package extract_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pigges/json-extractor/extract"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	cyclic := map[string]any{"name": "loop"}
	cyclic["self"] = cyclic

	longText := strings.Repeat("x", 250)

	tests := []struct {
		name  string
		data  any
		expKd extract.Kind
		exp   string
	}{
		{name: "ok/null", data: nil, expKd: extract.KindNull, exp: "null"},
		{name: "ok/string_trimmed", data: "  Alice  ", expKd: extract.KindString, exp: "Alice"},
		{name: "ok/string_tabs_newlines", data: "\tfoo bar\n", expKd: extract.KindString, exp: "foo bar"},
		{name: "ok/string_bom", data: "\uFEFFvalue", expKd: extract.KindString, exp: "value"},
		{name: "ok/string_empty", data: "   ", expKd: extract.KindString, exp: ""},
		{name: "ok/int", data: int64(42), expKd: extract.KindNumber, exp: "42"},
		{name: "ok/negative_int", data: -7, expKd: extract.KindNumber, exp: "-7"},
		{name: "ok/float", data: 1.5, expKd: extract.KindNumber, exp: "1.5"},
		{name: "ok/float_integral", data: float64(42), expKd: extract.KindNumber, exp: "42"},
		{name: "ok/float_negative_zero", data: math.Copysign(0, -1), expKd: extract.KindNumber, exp: "0"},
		{name: "ok/float_small", data: 0.000001, expKd: extract.KindNumber, exp: "0.000001"},
		{name: "ok/float_tiny", data: 1e-7, expKd: extract.KindNumber, exp: "1e-7"},
		{name: "ok/float_huge", data: 1e21, expKd: extract.KindNumber, exp: "1e+21"},
		{name: "ok/float_large", data: 123456789012.0, expKd: extract.KindNumber, exp: "123456789012"},
		{name: "ok/json_number", data: json.Number("3.14"), expKd: extract.KindNumber, exp: "3.14"},
		{name: "ok/true", data: true, expKd: extract.KindBoolean, exp: "true"},
		{name: "ok/false", data: false, expKd: extract.KindBoolean, exp: "false"},
		{
			name:  "ok/small_object_indented",
			data:  map[string]any{"b": "x", "a": int64(1)},
			expKd: extract.KindObject,
			exp:   "{\n  \"a\": 1,\n  \"b\": \"x\"\n}",
		},
		{
			name:  "ok/small_array_indented",
			data:  []any{int64(1), "two", nil},
			expKd: extract.KindArray,
			exp:   "[\n  1,\n  \"two\",\n  null\n]",
		},
		{name: "ok/empty_object", data: map[string]any{}, expKd: extract.KindObject, exp: "{}"},
		{name: "ok/empty_array", data: []any{}, expKd: extract.KindArray, exp: "[]"},
		{
			name:  "ok/no_html_escaping",
			data:  map[string]any{"html": "<b>&</b>"},
			expKd: extract.KindObject,
			exp:   "{\n  \"html\": \"<b>&</b>\"\n}",
		},
		{
			name:  "ok/large_object_compact",
			data:  map[string]any{"id": int64(1), "text": longText},
			expKd: extract.KindObject,
			exp:   `{"id":1,"text":"` + longText + `"}`,
		},
		{name: "ok/cyclic_unserializable", data: cyclic, expKd: extract.KindObject, exp: extract.Unserializable},
		{
			name:  "ok/non_finite_members_null",
			data:  map[string]any{"n": math.NaN(), "i": math.Inf(-1)},
			expKd: extract.KindObject,
			exp:   "{\n  \"i\": null,\n  \"n\": null\n}",
		},
		{name: "ok/float_infinite", data: math.Inf(1), expKd: extract.KindNumber, exp: "Infinity"},
		{name: "ok/int_beyond_float_precision", data: int64(9007199254740993), expKd: extract.KindNumber, exp: "9007199254740992"},
		{name: "ok/int_max_safe", data: int64(9007199254740991), expKd: extract.KindNumber, exp: "9007199254740991"},
		{name: "ok/string_nel_kept", data: "\u0085x\u0085", expKd: extract.KindString, exp: "\u0085x\u0085"},
		{name: "ok/string_unicode_spaces", data: "\u00a0\u2028x\u3000", expKd: extract.KindString, exp: "x"},
		{
			name:  "ok/string_escapes",
			data:  []any{"a\"b\\c\n\u0001\u2028"},
			expKd: extract.KindArray,
			exp:   "[\n  \"a\\\"b\\\\c\\n\\u0001\u2028\"\n]",
		},
		{
			name:  "ok/unsupported_type_unserializable",
			data:  []any{make(chan int)},
			expKd: extract.KindArray,
			exp:   extract.Unserializable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := extract.ValueOf(tt.data)
			assert.Equal(t, tt.expKd, v.Kind())
			assert.Equal(t, tt.exp, extract.Format(v))
		})
	}
}

func TestFormatThreshold(t *testing.T) {
	t.Parallel()

	// {\n  "k": "<n x's>"\n} is 13 characters plus the string length.
	atLimit := map[string]any{"k": strings.Repeat("x", 200-13)}
	overLimit := map[string]any{"k": strings.Repeat("x", 200-12)}

	out := extract.Format(extract.ValueOf(atLimit))
	assert.Len(t, out, 200)
	assert.Contains(t, out, "\n")

	out = extract.Format(extract.ValueOf(overLimit))
	assert.NotContains(t, out, "\n")
	assert.Equal(t, `{"k":"`+strings.Repeat("x", 188)+`"}`, out)
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parts []string
		exp   string
	}{
		{name: "ok/single", parts: []string{"Alice"}, exp: "Alice"},
		{name: "ok/single_with_separator", parts: []string{"a, b"}, exp: "a, b"},
		{name: "ok/two", parts: []string{"1", "2"}, exp: "1, 2"},
		{name: "ok/three", parts: []string{"x", "null", "true"}, exp: "x, null, true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.exp, extract.Join(tt.parts))
		})
	}
}

func TestFormatParsed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		exp  string
	}{
		{
			name: "ok/member_order_kept",
			doc:  `{"name": "Bob", "id": 7}`,
			exp:  "{\n  \"name\": \"Bob\",\n  \"id\": 7\n}",
		},
		{
			name: "ok/nested_order_kept",
			doc:  `{"z": [{"y": 1, "x": 2}], "a": {}}`,
			exp:  "{\n  \"z\": [\n    {\n      \"y\": 1,\n      \"x\": 2\n    }\n  ],\n  \"a\": {}\n}",
		},
		{
			name: "ok/overflowing_member_null",
			doc:  `{"f": 1e400, "g": -1e400}`,
			exp:  "{\n  \"f\": null,\n  \"g\": null\n}",
		},
		{name: "ok/overflowing_number", doc: `1e400`, exp: "Infinity"},
		{name: "ok/huge_integer", doc: `123456789012345678901234567890`, exp: "1.2345678901234568e+29"},
		{name: "ok/integer_beyond_precision", doc: `9007199254740993`, exp: "9007199254740992"},
		{name: "ok/exponent_member", doc: `{"e": 1e21, "s": 1e-7}`, exp: "{\n  \"e\": 1e+21,\n  \"s\": 1e-7\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := extract.Parse([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.exp, extract.Format(extract.ValueOf(doc)))
		})
	}
}
