// Package freq aggregates filtered tokens into a frequency table.
package freq

import "sort"

// Entry is one row of a frequency table.
type Entry struct {
	Word  string
	Total int
}

// Table is an ordered frequency table: unique words sorted by Total
// descending, ties broken by first occurrence in the counted stream.
type Table []Entry

// Count builds a Table from a token stream. Deterministic for a given
// input: the sort is stable over encounter order, so equal counts keep the
// order in which the words first appeared. An empty stream yields an empty
// table.
func Count(tokens []string) Table {
	counts := make(map[string]int, len(tokens))
	var order []string
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	table := make(Table, 0, len(order))
	for _, word := range order {
		table = append(table, Entry{Word: word, Total: counts[word]})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Total > table[j].Total
	})
	return table
}

// Threshold returns the order-preserving subset with Total >= n.
func (t Table) Threshold(n int) Table {
	out := make(Table, 0, len(t))
	for _, e := range t {
		if e.Total >= n {
			out = append(out, e)
		}
	}
	return out
}

// Head returns the first n rows, or all rows when the table is shorter.
func (t Table) Head(n int) Table {
	if len(t) < n {
		n = len(t)
	}
	return t[:n]
}

// TotalTokens sums the counts, i.e. the number of tokens that survived
// filtering.
func (t Table) TotalTokens() int {
	sum := 0
	for _, e := range t {
		sum += e.Total
	}
	return sum
}
