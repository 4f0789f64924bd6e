package cli

import (
	"fmt"
	"strconv"

	actx "github.com/Pigges/json-extractor/app/context"
	aerrors "github.com/Pigges/json-extractor/app/errors"
	"github.com/Pigges/json-extractor/extract"
	"github.com/Pigges/json-extractor/web/client"
)

// Extract fetches a JSON document and prints the values matched by a JSONPath
// expression, formatted the same way as the web server does.
type Extract struct {
	URL   string `arg:"" help:"URL of the JSON document."`
	Path  string `arg:"" help:"JSONPath expression to evaluate, e.g. '$.store.book[0].title'."`
	Table bool   `help:"Print each matched value on its own row, along with its index and type."`
}

// Run the extract command.
func (c *Extract) Run(appCtx *actx.Context) error {
	fetcher := client.New(nil, appCtx.Logger)

	doc, err := fetcher.Fetch(appCtx.Ctx, c.URL)
	if err != nil {
		return aerrors.NewWithCause("failed fetching document", err, "url", c.URL)
	}

	values, err := extract.Query(doc, c.Path)
	if err != nil {
		return aerrors.NewWithCause("failed extracting values", err, "url", c.URL, "path", c.Path)
	}

	parts := extract.FormatAll(values)

	if c.Table {
		data := make([][]string, len(values))
		for i, v := range values {
			data[i] = []string{strconv.Itoa(i), v.Kind().String(), parts[i]}
		}
		if err = renderTable([]string{"#", "Type", "Value"}, data, appCtx.Stdout); err != nil {
			return fmt.Errorf("failed rendering table: %w", err)
		}
		return nil
	}

	_, err = fmt.Fprintln(appCtx.Stdout, extract.Join(parts))

	return err //nolint:wrapcheck // This is fine.
}
