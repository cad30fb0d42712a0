// Package stats derives aggregate frequency tables from a full record set.
//
// Aggregation always runs over the complete set, independent of any active
// filters, and is recomputed on demand rather than maintained incrementally.
package stats

import (
	"sort"
	"strings"

	"github.com/hupe1980/bibgo/record"
)

// Truncation limits for the top-N tables.
const (
	maxTopLanguages = 5
	maxTopFormats   = 5
	maxTopAuthors   = 10
	maxTopTags      = 60
)

// unknownLanguage is counted for records with an empty language field.
const unknownLanguage = "Unknown"

// Entry is one row of a frequency table.
type Entry struct {
	Name  string
	Count int
}

// TagEntry is one row of the tag table, with a display weight for tag-cloud
// scaling. The weight is purely presentational: 0.85 + count/max * 1.5,
// where max is the highest count within the truncated table.
type TagEntry struct {
	Name   string
	Count  int
	Weight float64
}

// Summary holds the aggregate view of one record set.
type Summary struct {
	TotalBooks    int
	UniqueAuthors int
	TopLanguages  []Entry    // at most 5
	TopFormats    []Entry    // at most 5
	TopAuthors    []Entry    // at most 10
	TopTags       []TagEntry // at most 60
}

// Aggregate computes the summary for a record set.
//
// Authors are derived by splitting the display string on "&", trimming and
// discarding empty segments; identity is the trimmed string, case-sensitive.
// An empty language field counts as "Unknown". Formats are lower-cased and
// trimmed. Every table is sorted by descending count with ties kept in
// first-encountered order, then truncated.
func Aggregate(records []record.Record) Summary {
	authors := newCounter()
	languages := newCounter()
	formats := newCounter()
	tags := newCounter()

	for i := range records {
		r := &records[i]

		for _, a := range r.AuthorList() {
			authors.add(a)
		}

		langs := r.LanguageList()
		if len(langs) == 0 {
			languages.add(unknownLanguage)
		} else {
			for _, l := range langs {
				languages.add(l)
			}
		}

		for _, f := range r.Formats {
			if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
				formats.add(f)
			}
		}

		for _, t := range r.Tags {
			if t = strings.TrimSpace(t); t != "" {
				tags.add(t)
			}
		}
	}

	return Summary{
		TotalBooks:    len(records),
		UniqueAuthors: authors.distinct(),
		TopLanguages:  languages.top(maxTopLanguages),
		TopFormats:    formats.top(maxTopFormats),
		TopAuthors:    authors.top(maxTopAuthors),
		TopTags:       weights(tags.top(maxTopTags)),
	}
}

// weights computes the tag-cloud weight column over a truncated table. The
// table arrives sorted descending, so the maximum is the first count.
func weights(entries []Entry) []TagEntry {
	if len(entries) == 0 {
		return nil
	}
	max := float64(entries[0].Count)
	out := make([]TagEntry, len(entries))
	for i, e := range entries {
		out[i] = TagEntry{
			Name:   e.Name,
			Count:  e.Count,
			Weight: 0.85 + float64(e.Count)/max*1.5,
		}
	}
	return out
}

// counter is a frequency table that remembers first-encountered order so
// that the final stable sort breaks count ties deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(name string) {
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

func (c *counter) distinct() int {
	return len(c.counts)
}

// top returns up to n entries sorted by descending count, ties in
// first-encountered order.
func (c *counter) top(n int) []Entry {
	if len(c.order) == 0 {
		return nil
	}
	entries := make([]Entry, len(c.order))
	for i, name := range c.order {
		entries[i] = Entry{Name: name, Count: c.counts[name]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
