// Package index derives facet indices from a loaded record set.
//
// Facets maps every tag and format to a roaring bitmap of record positions.
// The bitmaps serve two purposes: occurrence counts for facet display
// (cardinality) and fast candidate compilation for the discrete filter
// stages. Compilation is an optimization only; the facet package's scan
// stages remain the semantic reference, and both must agree.
//
// A Facets value is derived and read-only: it is rebuilt wholesale whenever
// the record set changes, never maintained incrementally.
package index

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bibgo/facet"
	"github.com/hupe1980/bibgo/record"
)

// Facets holds the tag and format posting bitmaps of one record set.
type Facets struct {
	total uint32

	// Tag postings are keyed by the trimmed tag, format postings by the
	// lower-cased format code, mirroring the comparison rules of the
	// corresponding filter stages.
	tags    map[string]*roaring.Bitmap
	formats map[string]*roaring.Bitmap

	// First-encountered key order, for deterministic facet listings.
	tagOrder    []string
	formatOrder []string
}

// Build derives the facet index for a record set. Bitmap positions are
// indices into the given slice, so a Facets value is only meaningful
// alongside the exact record set it was built from.
func Build(records []record.Record) *Facets {
	f := &Facets{
		total:   uint32(len(records)),
		tags:    make(map[string]*roaring.Bitmap),
		formats: make(map[string]*roaring.Bitmap),
	}

	for i := range records {
		pos := uint32(i)
		for _, tag := range records[i].Tags {
			tag = strings.TrimSpace(tag)
			bm, ok := f.tags[tag]
			if !ok {
				bm = roaring.New()
				f.tags[tag] = bm
				f.tagOrder = append(f.tagOrder, tag)
			}
			bm.Add(pos)
		}
		for _, format := range records[i].Formats {
			format = strings.ToLower(format)
			bm, ok := f.formats[format]
			if !ok {
				bm = roaring.New()
				f.formats[format] = bm
				f.formatOrder = append(f.formatOrder, format)
			}
			bm.Add(pos)
		}
	}

	return f
}

// Tags returns all distinct trimmed tags in first-encountered order.
func (f *Facets) Tags() []string {
	return f.tagOrder
}

// Formats returns all distinct lower-cased formats in first-encountered order.
func (f *Facets) Formats() []string {
	return f.formatOrder
}

// TagCount returns how many records carry the given tag (trimmed).
func (f *Facets) TagCount(tag string) int {
	if bm, ok := f.tags[strings.TrimSpace(tag)]; ok {
		return int(bm.GetCardinality())
	}
	return 0
}

// FormatCount returns how many records carry the given format code
// (case-insensitive).
func (f *Facets) FormatCount(format string) int {
	if bm, ok := f.formats[strings.ToLower(format)]; ok {
		return int(bm.GetCardinality())
	}
	return 0
}

// Compile turns the discrete filter criteria into a single candidate bitmap.
//
// ok is false when neither a format nor a tag constraint is active, meaning
// every record is a candidate and the caller should skip the membership
// test. When ok is true the returned bitmap holds exactly the record
// positions that pass both the format stage and the tag stage; it may be
// empty. The bitmap is owned by the caller.
func (f *Facets) Compile(c facet.Criteria) (*roaring.Bitmap, bool) {
	formatActive := c.Format != "" && !strings.EqualFold(c.Format, facet.FormatAll)
	if !formatActive && len(c.Tags) == 0 {
		return nil, false
	}

	cand := roaring.New()
	cand.AddRange(0, uint64(f.total))

	if formatActive {
		if bm, ok := f.formats[strings.ToLower(c.Format)]; ok {
			cand.And(bm)
		} else {
			cand.Clear()
		}
	}

	if len(c.Tags) > 0 {
		cand.And(f.compileTags(c.Tags, c.TagMode))
	}

	return cand, true
}

func (f *Facets) compileTags(tags []string, mode facet.TagMode) *roaring.Bitmap {
	if mode == facet.TagModeAny {
		union := roaring.New()
		for _, tag := range tags {
			if bm, ok := f.tags[strings.TrimSpace(tag)]; ok {
				union.Or(bm)
			}
		}
		return union
	}

	inter := roaring.New()
	inter.AddRange(0, uint64(f.total))
	for _, tag := range tags {
		bm, ok := f.tags[strings.TrimSpace(tag)]
		if !ok {
			inter.Clear()
			return inter
		}
		inter.And(bm)
	}
	return inter
}
