package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Typographic characters standardized to their ASCII equivalents so the
// tokenizer sees one apostrophe form regardless of how the corpus was typed.
var quoteReplacer = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"‘", "'", // left single quotation mark
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
)

// Text canonicalizes raw corpus text: NFKC normalization collapses
// visually-equivalent code points to one representation, then curly
// apostrophes and quotes become plain ones. Total over any input and
// idempotent.
func Text(s string) string {
	return quoteReplacer.Replace(norm.NFKC.String(s))
}
