// Package bibgo provides an embedded faceted search engine for bibliographic
// record collections.
//
// Bibgo holds a record set entirely in memory and renders faceted views over
// it: a boolean search language, discrete format/tag filters, locale-aware
// ordering, pagination and aggregate statistics. Matching is boolean, not
// scored; there is no relevance ranking.
//
// # Quick Start
//
//	lib := bibgo.New(bibgo.WithLocale(language.English))
//	if err := lib.LoadFile("./library.json"); err != nil {
//	    log.Fatal(err)
//	}
//
//	results := lib.Filter(facet.Criteria{
//	    Query:   `tolkien -tag:unread`,
//	    Format:  "epub",
//	    Tags:    []string{"fantasy"},
//	    TagMode: facet.TagModeAll,
//	    Sort:    facet.SortNewest,
//	})
//	page, totalPages := lib.Page(results, 1)
//
//	summary := lib.Stats()
//	fmt.Println(summary.TotalBooks, summary.UniqueAuthors)
//
// # Search Language
//
// The query box accepts a flat boolean syntax that never fails: terms,
// quoted phrases, field prefixes (title:, author:, tag:, publisher:), a "-"
// negation prefix, and AND/OR keywords (AND binds tighter). Malformed syntax
// degrades to literal text; see the query package.
//
// # Data Model
//
// The record set is replaced wholesale on load and never mutated in place.
// All pipeline functions are pure and synchronous: they recompute from the
// full set on every call, which is cheap enough to run per keystroke for
// typical collection sizes. Facet indices (tag/format posting bitmaps) are
// rebuilt on each load.
//
// # Key Features
//
//   - Failure-free boolean query language with field scoping and negation
//   - Format and tag facets backed by Roaring Bitmaps
//   - Locale-aware title/author collation (golang.org/x/text)
//   - JSON ingestion with transparent gzip/lz4 decompression
//   - Aggregate tables: top authors, languages, formats, weighted tag cloud
package bibgo
