package extract

import (
	"encoding/json"
	"math/big"
)

// Kind is the JSON type of a matched value.
type Kind int

// Supported value kinds.
const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a single value selected from a JSON document, tagged with its kind.
type Value struct {
	kind Kind
	data any
}

// ValueOf wraps decoded JSON data, as returned by Parse. Types that aren't
// produced by a JSON decoder are treated as objects, and are rendered by
// serializing them.
func ValueOf(data any) Value {
	var kind Kind
	switch data.(type) {
	case nil:
		kind = KindNull
	case string:
		kind = KindString
	case bool:
		kind = KindBoolean
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number, *big.Int, *big.Float:
		kind = KindNumber
	case []any:
		kind = KindArray
	default:
		kind = KindObject
	}

	return Value{kind: kind, data: data}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}
