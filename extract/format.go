package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	// maxIndentedLen is the length in UTF-16 code units above which objects and
	// arrays are rendered as compact JSON instead of indented JSON.
	maxIndentedLen = 200

	// Unserializable is the text rendered for values that can't be encoded as
	// JSON.
	Unserializable = "[Unserializable object]"

	separator = ", "
)

// Format renders a matched value as plain text. It never fails: values that
// can't be serialized are rendered as Unserializable.
func Format(v Value) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		s, _ := v.data.(string)
		return strings.TrimFunc(s, isSpace)
	case KindNumber:
		return formatNumber(v.data)
	case KindBoolean:
		b, _ := v.data.(bool)
		return strconv.FormatBool(b)
	default:
		return formatStructured(v.data)
	}
}

// FormatAll renders every value in order.
func FormatAll(values []Value) []string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Format(v)
	}
	return parts
}

// Join combines formatted values into a single response body. A single value
// is returned verbatim.
func Join(parts []string) string {
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts, separator)
}

func formatStructured(data any) string {
	compact, err := appendJSON(nil, data, 0)
	if err != nil {
		return Unserializable
	}

	var indented bytes.Buffer
	if err = json.Indent(&indented, compact, "", "  "); err != nil {
		return Unserializable
	}
	if utf16Len(indented.String()) <= maxIndentedLen {
		return indented.String()
	}

	return string(compact)
}

// maxDepth bounds nesting when encoding, so self-referencing values fail
// instead of recursing forever.
const maxDepth = 1000

var errTooDeep = errors.New("value is nested too deeply")

// appendJSON appends the compact JSON encoding of data to buf. Objects keep
// their member order, numbers use the same text as formatNumber, and
// non-finite numbers are encoded as null.
func appendJSON(buf []byte, data any, depth int) ([]byte, error) {
	if depth > maxDepth {
		return nil, errTooDeep
	}

	switch v := data.(type) {
	case nil:
		return append(buf, "null"...), nil
	case bool:
		return strconv.AppendBool(buf, v), nil
	case string:
		return appendString(buf, v), nil
	case *Object:
		buf = append(buf, '{')
		for i, k := range v.keys {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendString(buf, k)
			buf = append(buf, ':')
			var err error
			if buf, err = appendJSON(buf, v.values[k], depth+1); err != nil {
				return nil, err
			}
		}
		return append(buf, '}'), nil
	case map[string]any:
		buf = append(buf, '{')
		for i, k := range slices.Sorted(maps.Keys(v)) {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendString(buf, k)
			buf = append(buf, ':')
			var err error
			if buf, err = appendJSON(buf, v[k], depth+1); err != nil {
				return nil, err
			}
		}
		return append(buf, '}'), nil
	case []any:
		buf = append(buf, '[')
		for i, e := range v {
			if i > 0 {
				buf = append(buf, ',')
			}
			var err error
			if buf, err = appendJSON(buf, e, depth+1); err != nil {
				return nil, err
			}
		}
		return append(buf, ']'), nil
	}

	if ValueOf(data).kind == KindNumber {
		f, bits := toFloat(data)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return append(buf, "null"...), nil
		}
		return append(buf, formatFloat(f, bits)...), nil
	}

	// Anything else isn't produced by Parse, and is encoded as encoding/json
	// would.
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed encoding value: %w", err)
	}

	return append(buf, b...), nil
}

// appendString appends s as a JSON string literal. Only quotes, backslashes
// and control characters are escaped.
func appendString(buf []byte, s string) []byte {
	const hex = "0123456789abcdef"

	buf = append(buf, '"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '"' || r == '\\':
			buf = append(buf, '\\', byte(r))
		case r == '\b':
			buf = append(buf, '\\', 'b')
		case r == '\f':
			buf = append(buf, '\\', 'f')
		case r == '\n':
			buf = append(buf, '\\', 'n')
		case r == '\r':
			buf = append(buf, '\\', 'r')
		case r == '\t':
			buf = append(buf, '\\', 't')
		case r < 0x20:
			buf = append(buf, '\\', 'u', '0', '0', hex[r>>4], hex[r&0xf])
		case r == utf8.RuneError && size == 1:
			buf = append(buf, "\uFFFD"...)
		default:
			buf = append(buf, s[i:i+size]...)
		}
		i += size
	}

	return append(buf, '"')
}

func formatNumber(data any) string {
	return formatFloat(toFloat(data))
}

// toFloat converts a number to the float64 it would be in JavaScript, along
// with the precision to render it with. Integers beyond 2^53 lose precision,
// as they would there.
func toFloat(data any) (float64, int) {
	switch n := data.(type) {
	case float64:
		return n, 64
	case float32:
		return float64(n), 32
	case int:
		return float64(n), 64
	case int8:
		return float64(n), 64
	case int16:
		return float64(n), 64
	case int32:
		return float64(n), 64
	case int64:
		return float64(n), 64
	case uint:
		return float64(n), 64
	case uint8:
		return float64(n), 64
	case uint16:
		return float64(n), 64
	case uint32:
		return float64(n), 64
	case uint64:
		return float64(n), 64
	case json.Number:
		f, _ := strconv.ParseFloat(n.String(), 64)
		return f, 64
	case *big.Int:
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, 64
	case *big.Float:
		f, _ := n.Float64()
		return f, 64
	default:
		return math.NaN(), 64
	}
}

// formatFloat renders f the way JavaScript does: the shortest representation
// that round-trips, switching to exponent notation for very small or very
// large magnitudes.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	fmtByte := byte('f')
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		fmtByte = 'e'
	}

	s := strconv.FormatFloat(f, fmtByte, -1, bits)
	if fmtByte == 'e' {
		// Clean up e-09 to e-9.
		n := len(s)
		if n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}

	return s
}

// isSpace reports the whitespace and line terminators that JavaScript trims:
// Unicode White_Space except NEL, plus the byte order mark.
func isSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
