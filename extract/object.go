package extract

import (
	"slices"

	"github.com/ohler55/ojg/jp"
)

// Object is a JSON object that keeps its members in document order. JSONPath
// wildcards and recursive descent visit its members in that order, and it is
// rendered with its keys in that order.
type Object struct {
	keys   []string
	values map[string]any
}

var _ jp.Keyed = (*Object)(nil)

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: map[string]any{}}
}

// ValueForKey returns the value of the member named key.
func (o *Object) ValueForKey(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// SetValueForKey sets the value of the member named key. A new key is
// appended after the existing ones; an existing key keeps its position.
func (o *Object) SetValueForKey(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// RemoveValueForKey removes the member named key.
func (o *Object) RemoveValueForKey(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
}

// Keys returns the member names in document order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.keys)
}

// MarshalJSON encodes the object as compact JSON, keeping the member order.
func (o *Object) MarshalJSON() ([]byte, error) {
	return appendJSON(nil, o, 0)
}
