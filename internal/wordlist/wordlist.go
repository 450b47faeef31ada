// Package wordlist downloads the base stopword corpus from a remote
// linguistic resource. The canonical sources publish one word per line as
// plain text, but mirrors sometimes serve the list wrapped in an HTML page,
// so the fetcher tolerates both.
package wordlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Fetcher downloads a stopword list over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher with a bounded request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: 30 * time.Second}}
}

// Fetch downloads the word list at url and returns its words, lowercased,
// deduplicated, and sorted.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	text := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") || looksLikeHTML(text) {
		text = stripHTML(text)
	}

	words := splitWords(text)
	if len(words) == 0 {
		return nil, fmt.Errorf("fetch %s: no words in response", url)
	}
	return words, nil
}

func looksLikeHTML(s string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html")
}

// stripHTML extracts the text nodes of an HTML document.
func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return buf.String()
}

// splitWords splits on any whitespace, lowercases, and deduplicates.
func splitWords(text string) []string {
	seen := make(map[string]struct{})
	for _, field := range strings.Fields(text) {
		seen[strings.ToLower(field)] = struct{}{}
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
