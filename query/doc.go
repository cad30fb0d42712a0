// Package query implements the boolean search language used by bibgo.
//
// The language is a flat, failure-free mini-syntax aimed at a search box:
//
//	hobbit                    substring match across all text fields
//	"the hobbit"              phrase (spaces preserved, same substring test)
//	title:hobbit              field-scoped term (title, author, tag, publisher)
//	-tag:fantasy              negated token
//	tolkien OR lewis          OR across AND-groups
//	tolkien AND hobbit        explicit AND (same as adjacency)
//
// Parse never returns an error: malformed syntax degrades to literal text so
// the search box can never fail from the user's perspective. Matching is
// boolean, not scored; there is no relevance ranking.
package query
