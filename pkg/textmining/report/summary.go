package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/freq"
)

// writeSummary exports the human-readable digest: the top 20 rows of the
// full table plus the thresholded count. With fewer than 20 distinct
// tokens the table simply shows what exists.
func (e *Emitter) writeSummary(path string, table, thresholded freq.Table) (string, error) {
	return writeArtifact(path, func(w io.Writer) error {
		lines := []string{
			"Top 20 tokens:",
			renderTable(table.Head(summaryRows)),
			"",
			fmt.Sprintf("Tokens with total >= %d: %d", e.threshold, len(thresholded)),
			"",
		}
		_, err := io.WriteString(w, strings.Join(lines, "\n"))
		return err
	})
}
