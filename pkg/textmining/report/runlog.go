package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/freq"
)

// writeRunLog exports the run metadata and artifact manifest. It is written
// last so the manifest can list exactly the artifacts that made it to disk,
// plus the log itself.
func (e *Emitter) writeRunLog(path string, table freq.Table, res Result, meta Meta) (string, error) {
	return writeArtifact(path, func(w io.Writer) error {
		lines := []string{
			"Customer Support Text Mining - Run Log",
			strings.Repeat("=", 40),
			fmt.Sprintf("Run ID:        %s", res.RunID),
			fmt.Sprintf("Run timestamp: %s", e.now().Format("2006-01-02 15:04:05")),
			fmt.Sprintf("Project root:  %s", meta.ProjectRoot),
			fmt.Sprintf("Input file:    %s", meta.InputPath),
			"",
			fmt.Sprintf("Unique tokens (after filtering): %d", res.UniqueTokens),
			fmt.Sprintf("Tokens with total >= %d: %d", e.threshold, res.ThresholdedCount),
			"",
			"Top 20 tokens:",
			renderTable(table.Head(summaryRows)),
			"",
			"Generated outputs:",
		}
		for _, artifact := range res.Written {
			lines = append(lines, "- "+artifact)
		}
		lines = append(lines, "- "+path)

		_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
		return err
	})
}
