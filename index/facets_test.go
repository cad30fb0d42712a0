package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/hupe1980/bibgo/facet"
	"github.com/hupe1980/bibgo/record"
)

func testRecords() []record.Record {
	return []record.Record{
		{ID: 1, Tags: []string{"fantasy", "classic"}, Formats: []string{"EPUB"}},
		{ID: 2, Tags: []string{"sci-fi", "classic"}, Formats: []string{"PDF", "epub"}},
		{ID: 3, Tags: []string{"fantasy"}, Formats: []string{"MOBI"}},
		{ID: 4, Tags: []string{" fantasy "}},
	}
}

func TestBuildCounts(t *testing.T) {
	f := Build(testRecords())

	assert.Equal(t, 3, f.TagCount("fantasy"), "tags are trimmed before counting")
	assert.Equal(t, 2, f.TagCount("classic"))
	assert.Equal(t, 0, f.TagCount("horror"))

	assert.Equal(t, 2, f.FormatCount("EPUB"), "formats count case-insensitively")
	assert.Equal(t, 1, f.FormatCount("pdf"))
	assert.Equal(t, 0, f.FormatCount("azw3"))

	assert.Equal(t, []string{"fantasy", "classic", "sci-fi"}, f.Tags())
	assert.Equal(t, []string{"epub", "pdf", "mobi"}, f.Formats())
}

func TestCompile(t *testing.T) {
	f := Build(testRecords())

	tests := []struct {
		name     string
		criteria facet.Criteria
		wantOK   bool
		want     []uint32 // record positions
	}{
		{"NoConstraint", facet.Criteria{Query: "ignored"}, false, nil},
		{"FormatAll", facet.Criteria{Format: facet.FormatAll}, false, nil},
		{"Format", facet.Criteria{Format: "epub"}, true, []uint32{0, 1}},
		{"UnknownFormat", facet.Criteria{Format: "azw3"}, true, nil},
		{
			"TagsAnd",
			facet.Criteria{Tags: []string{"fantasy", "classic"}, TagMode: facet.TagModeAll},
			true,
			[]uint32{0},
		},
		{
			"TagsOr",
			facet.Criteria{Tags: []string{"fantasy", "classic"}, TagMode: facet.TagModeAny},
			true,
			[]uint32{0, 1, 2, 3},
		},
		{
			"TagsAndUnknown",
			facet.Criteria{Tags: []string{"fantasy", "horror"}, TagMode: facet.TagModeAll},
			true,
			nil,
		},
		{
			"FormatAndTags",
			facet.Criteria{Format: "epub", Tags: []string{"classic"}, TagMode: facet.TagModeAll},
			true,
			[]uint32{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm, ok := f.Compile(tt.criteria)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			if len(tt.want) == 0 {
				assert.True(t, bm.IsEmpty())
				return
			}
			assert.Equal(t, tt.want, bm.ToArray())
		})
	}
}

// Compiled candidates must agree with the scan stages of the facet package.
func TestCompileAgreesWithScan(t *testing.T) {
	records := testRecords()
	f := Build(records)

	criteria := []facet.Criteria{
		{Format: "epub"},
		{Tags: []string{"fantasy"}, TagMode: facet.TagModeAll},
		{Tags: []string{"fantasy", "classic"}, TagMode: facet.TagModeAny},
		{Format: "pdf", Tags: []string{"classic"}, TagMode: facet.TagModeAll},
	}

	p := facet.New(language.Und)
	for _, c := range criteria {
		bm, ok := f.Compile(c)
		require.True(t, ok)

		var viaBitmap []int
		for i := range records {
			if bm.Contains(uint32(i)) {
				viaBitmap = append(viaBitmap, records[i].ID)
			}
		}

		viaScan := p.Apply(records, c)
		scanIDs := make([]int, 0, len(viaScan))
		for _, r := range viaScan {
			scanIDs = append(scanIDs, r.ID)
		}

		assert.ElementsMatch(t, scanIDs, viaBitmap, "criteria %+v", c)
	}
}
