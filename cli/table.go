package cli

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const tableMaxValueWidth = 100

// renderTable writes rows under a header rule, with light separators between
// columns. Multi-line values, like indented JSON, keep their line breaks.
func renderTable(header []string, rows [][]string, w io.Writer) error {
	rendition := tw.Rendition{
		Borders: tw.BorderNone,
		Symbols: tw.NewSymbols(tw.StyleLight),
		Settings: tw.Settings{
			Lines: tw.Lines{
				ShowTop:        tw.Off,
				ShowBottom:     tw.Off,
				ShowHeaderLine: tw.On,
				ShowFooterLine: tw.Off,
			},
			Separators: tw.Separators{
				ShowHeader:     tw.On,
				BetweenColumns: tw.On,
				BetweenRows:    tw.Off,
			},
		},
	}

	cellCfg := func(align tw.Align) tw.CellConfig {
		return tw.CellConfig{
			Formatting:   tw.CellFormatting{AutoWrap: tw.WrapNone},
			Alignment:    tw.CellAlignment{Global: align},
			ColMaxWidths: tw.CellWidth{Global: tableMaxValueWidth},
		}
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(rendition)),
		tablewriter.WithConfig(tablewriter.Config{
			Header: cellCfg(tw.AlignLeft),
			Row:    cellCfg(tw.AlignLeft),
		}),
	)

	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return err //nolint:wrapcheck // Wrapped by the caller.
	}

	return table.Render() //nolint:wrapcheck // Wrapped by the caller.
}
