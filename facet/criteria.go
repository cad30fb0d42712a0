package facet

import "slices"

// FormatAll is the format filter value that disables format filtering.
const FormatAll = "all"

// TagMode selects how multiple selected tags combine.
type TagMode uint8

const (
	// TagModeAll requires a record to carry every selected tag (AND).
	TagModeAll TagMode = iota
	// TagModeAny requires a record to carry at least one selected tag (OR).
	TagModeAny
)

// SortKey selects the final ordering stage.
type SortKey uint8

const (
	// SortNewest orders newest-first by the added timestamp. Unparseable
	// timestamps sort as the oldest possible value.
	SortNewest SortKey = iota
	// SortOldest orders oldest-first by the added timestamp.
	SortOldest
	// SortTitle orders by title ascending, preferring the title sort key.
	SortTitle
	// SortAuthor orders by author ascending, preferring the author sort key.
	SortAuthor
)

// Criteria is one immutable set of filter parameters. It is owned by the
// consuming view; the pipeline treats it purely as input.
type Criteria struct {
	// Query is the free-text boolean query. Blank skips the text stage.
	Query string
	// Format keeps records carrying this file-type code (case-insensitive).
	// FormatAll or "" skips the stage.
	Format string
	// Tags is the selected tag set in selection order. Empty skips the
	// tag stage. Selected tags are compared after trimming, against
	// likewise-trimmed record tags.
	Tags []string
	// TagMode combines multiple selected tags.
	TagMode TagMode
	// Sort is the final ordering.
	Sort SortKey
}

// ForcesPageReset reports whether moving from prev to c must reset the
// current page to 1. Any change to query, format, tag set or sort key resets;
// toggling only the tag combination mode does not.
func (c Criteria) ForcesPageReset(prev Criteria) bool {
	return c.Query != prev.Query ||
		c.Format != prev.Format ||
		c.Sort != prev.Sort ||
		!slices.Equal(c.Tags, prev.Tags)
}
