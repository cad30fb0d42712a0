package facet

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hupe1980/bibgo/query"
	"github.com/hupe1980/bibgo/record"
)

// Pipeline applies filter criteria to a record set and orders the result.
//
// A Pipeline is cheap to create and not safe for concurrent use: the
// underlying collator carries internal buffers. The intended model is one
// pipeline per view, invoked synchronously on input changes.
type Pipeline struct {
	coll *collate.Collator
}

// New creates a Pipeline whose title/author ordering follows the collation
// rules of the given locale.
func New(tag language.Tag) *Pipeline {
	return &Pipeline{coll: collate.New(tag)}
}

// Apply runs the filter stages in fixed order (free-text, format, tag,
// sort), each narrowing or reordering the previous stage's output. The input
// slice is never mutated; the result is a fresh slice in sorted order.
// Pagination is left to the caller (see Paginate).
//
// Zero matches is a valid terminal state, not an error; Apply cannot fail
// for well-typed input.
func (p *Pipeline) Apply(records []record.Record, c Criteria) []record.Record {
	tokens := query.Parse(c.Query)

	formatActive := c.Format != "" && !strings.EqualFold(c.Format, FormatAll)

	selected := trimmedTags(c.Tags)

	out := make([]record.Record, 0, len(records))
	for i := range records {
		r := &records[i]

		if len(tokens) > 0 && !query.Matches(r, tokens) {
			continue
		}
		if formatActive && !r.HasFormat(c.Format) {
			continue
		}
		if len(selected) > 0 && !matchesTags(r, selected, c.TagMode) {
			continue
		}

		out = append(out, records[i])
	}

	p.Sort(out, c.Sort)

	return out
}

// Sort stably orders records in place by the given key.
func (p *Pipeline) Sort(records []record.Record, key SortKey) {
	switch key {
	case SortOldest:
		slices.SortStableFunc(records, func(a, b record.Record) int {
			return a.AddedTime().Compare(b.AddedTime())
		})
	case SortTitle:
		slices.SortStableFunc(records, func(a, b record.Record) int {
			return p.coll.CompareString(titleKey(&a), titleKey(&b))
		})
	case SortAuthor:
		slices.SortStableFunc(records, func(a, b record.Record) int {
			return p.coll.CompareString(authorKey(&a), authorKey(&b))
		})
	default: // SortNewest
		slices.SortStableFunc(records, func(a, b record.Record) int {
			return b.AddedTime().Compare(a.AddedTime())
		})
	}
}

// matchesTags applies the tag stage to one record. Selected tags arrive
// already trimmed.
func matchesTags(r *record.Record, selected []string, mode TagMode) bool {
	if mode == TagModeAny {
		for _, tag := range selected {
			if r.HasTag(tag) {
				return true
			}
		}
		return false
	}

	for _, tag := range selected {
		if !r.HasTag(tag) {
			return false
		}
	}
	return true
}

func trimmedTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = strings.TrimSpace(t)
	}
	return out
}

func titleKey(r *record.Record) string {
	if r.TitleSort != "" {
		return r.TitleSort
	}
	return r.Title
}

func authorKey(r *record.Record) string {
	if r.AuthorSort != "" {
		return r.AuthorSort
	}
	return r.Authors
}
