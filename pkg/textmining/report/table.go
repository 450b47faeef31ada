package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/freq"
)

// renderTable renders a frequency table for the text summary and run log:
// left-aligned words, right-aligned counts.
func renderTable(rows freq.Table) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	tw.AppendHeader(table.Row{"word", "total"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.Word, strconv.Itoa(row.Total)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
