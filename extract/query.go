package extract

import (
	"errors"
	"fmt"

	"github.com/ohler55/ojg/jp"
)

// ErrNoMatch is returned when a query matches nothing in the document.
var ErrNoMatch = errors.New("no results found")

// Query evaluates the JSONPath expression path against doc, and returns the
// matched values in evaluation order. It returns ErrNoMatch if nothing
// matched.
func Query(doc any, path string) ([]Value, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", path, err)
	}

	matches := expr.Get(doc)
	if len(matches) == 0 {
		return nil, ErrNoMatch
	}

	values := make([]Value, len(matches))
	for i, m := range matches {
		values[i] = ValueOf(m)
	}

	return values, nil
}

// Extract evaluates path against doc and renders the matches as a single text
// body.
func Extract(doc any, path string) (string, error) {
	values, err := Query(doc, path)
	if err != nil {
		return "", err
	}

	return Join(FormatAll(values)), nil
}
