package query

import (
	"strings"

	"github.com/hupe1980/bibgo/record"
)

// Matches evaluates a parsed token sequence against one record.
//
// Tokens are partitioned into groups split on OR operator tokens; adjacency
// inside a group is implicit AND (explicit AND tokens are no-ops). A record
// matches when every token of at least one group matches. Precedence is
// fixed: AND binds tighter than OR, with no parentheses or nesting.
//
// A standalone NOT keyword is tokenized but deliberately inert; only the
// "-" prefix negates (see Parse). An empty token sequence, and therefore a
// blank or whitespace-only query, matches every record, as do queries
// consisting solely of operator keywords.
func Matches(r *record.Record, tokens []Token) bool {
	if len(tokens) == 0 {
		return true
	}

	sawGroup := false
	groupMatches := true
	groupLen := 0

	flush := func() bool {
		return groupLen > 0 && groupMatches
	}

	for _, t := range tokens {
		if t.Kind == KindOperator {
			if t.Value == "OR" {
				if flush() {
					return true
				}
				groupMatches = true
				if groupLen > 0 {
					sawGroup = true
				}
				groupLen = 0
			}
			// AND is implicit between adjacent tokens; NOT is inert.
			continue
		}

		groupLen++
		if groupMatches && !t.Match(r) {
			groupMatches = false
		}
	}

	if flush() {
		return true
	}
	if groupLen > 0 {
		sawGroup = true
	}

	// Operator-only queries have no searchable text and match everything.
	return !sawGroup
}

// Match evaluates a single non-operator token against the record. Negation
// inverts this per-token result.
//
// Unscoped tokens match when the case-insensitive substring test succeeds
// against any of title, author display string, any tag, or publisher.
// Field-scoped tokens match only their designated text: title additionally
// checks the title sort key, author the author sort key, and tag checks each
// tag element independently. Operator tokens never match.
func (t Token) Match(r *record.Record) bool {
	if t.Kind == KindOperator {
		return false
	}

	matched := t.matchField(r)
	if t.Negated {
		return !matched
	}
	return matched
}

func (t Token) matchField(r *record.Record) bool {
	needle := strings.ToLower(t.Value)

	switch t.Field {
	case FieldTitle:
		return containsFold(r.Title, needle) || containsFold(r.TitleSort, needle)
	case FieldAuthor:
		return containsFold(r.Authors, needle) || containsFold(r.AuthorSort, needle)
	case FieldTag:
		return anyTagContains(r.Tags, needle)
	case FieldPublisher:
		return containsFold(r.Publisher, needle)
	default:
		return containsFold(r.Title, needle) ||
			containsFold(r.Authors, needle) ||
			anyTagContains(r.Tags, needle) ||
			containsFold(r.Publisher, needle)
	}
}

func anyTagContains(tags []string, needle string) bool {
	for _, tag := range tags {
		if containsFold(tag, needle) {
			return true
		}
	}
	return false
}

// containsFold is a case-insensitive substring test. The needle is already
// lower-cased by the caller; only the haystack is folded here.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
