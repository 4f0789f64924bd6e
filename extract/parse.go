package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ohler55/ojg/oj"
)

// Parse decodes a JSON document. Objects are decoded as *Object, arrays as
// []any, integers that fit as int64 and other numbers as float64. Numbers
// outside the float64 range become infinities, like in JavaScript.
//
// An empty document is an error wrapping io.ErrUnexpectedEOF.
func Parse(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty document: %w", io.ErrUnexpectedEOF)
	}

	b := &docBuilder{}
	if err := oj.Tokenize(data, b); err != nil {
		return nil, err //nolint:wrapcheck // Wrapped by the caller.
	}
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stack) > 0 || b.roots == 0 {
		return nil, fmt.Errorf("incomplete document: %w", io.ErrUnexpectedEOF)
	}

	return b.root, nil
}

// docBuilder assembles a document from tokenizer callbacks.
type docBuilder struct {
	stack []*container
	root  any
	roots int
	err   error
}

type container struct {
	obj *Object
	arr []any
	key string
}

var _ oj.TokenHandler = (*docBuilder)(nil)

var errTrailingData = errors.New("unexpected data after the top-level value")

func (b *docBuilder) add(v any) {
	if len(b.stack) == 0 {
		b.roots++
		if b.roots > 1 && b.err == nil {
			b.err = errTrailingData
		}
		b.root = v
		return
	}

	c := b.stack[len(b.stack)-1]
	if c.obj != nil {
		c.obj.SetValueForKey(c.key, v)
		return
	}
	c.arr = append(c.arr, v)
}

func (b *docBuilder) pop() *container {
	c := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return c
}

func (b *docBuilder) Null() { b.add(nil) }
func (b *docBuilder) Bool(v bool) { b.add(v) }
func (b *docBuilder) Int(v int64) { b.add(v) }
func (b *docBuilder) Float(v float64) { b.add(v) }
func (b *docBuilder) String(v string) { b.add(v) }
func (b *docBuilder) Key(k string) { b.stack[len(b.stack)-1].key = k }
func (b *docBuilder) ObjectStart() { b.stack = append(b.stack, &container{obj: NewObject()}) }
func (b *docBuilder) ObjectEnd() { b.add(b.pop().obj) }
func (b *docBuilder) ArrayStart() { b.stack = append(b.stack, &container{arr: []any{}}) }
func (b *docBuilder) ArrayEnd() { b.add(b.pop().arr) }

// Number receives numbers that fit neither int64 nor float64. ParseFloat
// returns the nearest float or an infinity for those, and the range error is
// expected.
func (b *docBuilder) Number(v string) {
	f, _ := strconv.ParseFloat(v, 64)
	b.add(f)
}
