package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/freq"
)

// writeCSV exports a table as a two-column record set with a word,total
// header. Byte-identical across runs for the same table.
func (e *Emitter) writeCSV(path string, table freq.Table) (string, error) {
	return writeArtifact(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"word", "total"}); err != nil {
			return err
		}
		for _, row := range table {
			if err := cw.Write([]string{row.Word, strconv.Itoa(row.Total)}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}
