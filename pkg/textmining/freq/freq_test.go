package freq

import (
	"reflect"
	"testing"
)

func TestCountSortsByTotalDescending(t *testing.T) {
	table := Count([]string{"reset", "password", "password", "help", "password", "reset"})

	want := Table{
		{Word: "password", Total: 3},
		{Word: "reset", Total: 2},
		{Word: "help", Total: 1},
	}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("Count() = %v, want %v", table, want)
	}
}

func TestCountTieBreakIsFirstOccurrence(t *testing.T) {
	table := Count([]string{"zebra", "apple", "mango", "apple", "zebra", "mango"})

	// All tied at 2; encounter order decides.
	want := []string{"zebra", "apple", "mango"}
	for i, w := range want {
		if table[i].Word != w {
			t.Errorf("row %d = %q, want %q (first-occurrence tie-break)", i, table[i].Word, w)
		}
	}
}

func TestCountDeterministic(t *testing.T) {
	tokens := []string{"b", "a", "b", "c", "a", "b", "d", "d"}
	first := Count(tokens)
	second := Count(tokens)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Count not deterministic: %v vs %v", first, second)
	}
}

func TestCountEmpty(t *testing.T) {
	if table := Count(nil); len(table) != 0 {
		t.Errorf("Count(nil) = %v, want empty table", table)
	}
}

func TestTotalTokensMatchesInputLength(t *testing.T) {
	tokens := []string{"a", "b", "a", "c", "a"}
	table := Count(tokens)
	if got := table.TotalTokens(); got != len(tokens) {
		t.Errorf("TotalTokens() = %d, want %d", got, len(tokens))
	}
}

func TestThresholdIsOrderPreservingSubset(t *testing.T) {
	table := Table{
		{Word: "password", Total: 300},
		{Word: "order", Total: 250},
		{Word: "reset", Total: 120},
		{Word: "help", Total: 4},
	}

	got := table.Threshold(250)
	want := Table{
		{Word: "password", Total: 300},
		{Word: "order", Total: 250},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Threshold(250) = %v, want %v", got, want)
	}
}

func TestThresholdAboveAllCountsIsEmpty(t *testing.T) {
	table := Count([]string{"a", "b", "a"})
	if got := table.Threshold(100); len(got) != 0 {
		t.Errorf("Threshold(100) = %v, want empty", got)
	}
}

func TestHead(t *testing.T) {
	table := Table{{Word: "a", Total: 3}, {Word: "b", Total: 2}, {Word: "c", Total: 1}}

	if got := table.Head(2); len(got) != 2 || got[0].Word != "a" {
		t.Errorf("Head(2) = %v", got)
	}
	if got := table.Head(20); len(got) != 3 {
		t.Errorf("Head(20) = %v, want all rows without padding", got)
	}
}
