package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bibgo/record"
)

func TestAggregateAuthors(t *testing.T) {
	records := []record.Record{
		{ID: 1, Authors: "Ann Lee & Bo Kim"},
		{ID: 2, Authors: "Ann Lee"},
		{ID: 3, Authors: " Bo Kim "},
		{ID: 4, Authors: "ann lee"}, // case-sensitive identity: a distinct author
		{ID: 5},
	}

	s := Aggregate(records)

	assert.Equal(t, 5, s.TotalBooks)
	assert.Equal(t, 3, s.UniqueAuthors)
	assert.Equal(t, []Entry{
		{Name: "Ann Lee", Count: 2},
		{Name: "Bo Kim", Count: 2},
		{Name: "ann lee", Count: 1},
	}, s.TopAuthors)
}

func TestAggregateLanguages(t *testing.T) {
	records := []record.Record{
		{ID: 1, Languages: "eng, deu"},
		{ID: 2, Languages: "eng"},
		{ID: 3}, // empty counts as Unknown
		{ID: 4},
	}

	s := Aggregate(records)

	assert.Equal(t, []Entry{
		{Name: "eng", Count: 2},
		{Name: "Unknown", Count: 2},
		{Name: "deu", Count: 1},
	}, s.TopLanguages)
}

func TestAggregateFormats(t *testing.T) {
	records := []record.Record{
		{ID: 1, Formats: []string{"EPUB", " pdf "}},
		{ID: 2, Formats: []string{"epub"}},
	}

	s := Aggregate(records)

	assert.Equal(t, []Entry{
		{Name: "epub", Count: 2},
		{Name: "pdf", Count: 1},
	}, s.TopFormats)
}

func TestAggregateTagWeights(t *testing.T) {
	records := []record.Record{
		{ID: 1, Tags: []string{"fantasy", "classic"}},
		{ID: 2, Tags: []string{"fantasy", " classic "}},
		{ID: 3, Tags: []string{"fantasy"}},
		{ID: 4, Tags: []string{"sci-fi"}},
	}

	s := Aggregate(records)

	require.Len(t, s.TopTags, 3)
	assert.Equal(t, TagEntry{Name: "fantasy", Count: 3, Weight: 0.85 + 1.5}, s.TopTags[0])
	assert.Equal(t, "classic", s.TopTags[1].Name)
	assert.InDelta(t, 0.85+2.0/3.0*1.5, s.TopTags[1].Weight, 1e-9)
	assert.InDelta(t, 0.85+1.0/3.0*1.5, s.TopTags[2].Weight, 1e-9)
}

func TestAggregateTruncation(t *testing.T) {
	var records []record.Record
	for i := 0; i < 20; i++ {
		records = append(records, record.Record{
			ID:      i,
			Authors: fmt.Sprintf("Author %02d", i),
			Formats: []string{fmt.Sprintf("fmt%02d", i)},
		})
	}

	s := Aggregate(records)

	assert.Len(t, s.TopAuthors, 10)
	assert.Len(t, s.TopFormats, 5)
	assert.Equal(t, 20, s.UniqueAuthors, "truncation does not affect the distinct count")
}

func TestAggregateTieOrderIsFirstEncountered(t *testing.T) {
	records := []record.Record{
		{ID: 1, Tags: []string{"zeta", "alpha"}},
		{ID: 2, Tags: []string{"mid"}},
		{ID: 3, Tags: []string{"mid"}},
	}

	s := Aggregate(records)

	require.Len(t, s.TopTags, 3)
	assert.Equal(t, "mid", s.TopTags[0].Name)
	assert.Equal(t, "zeta", s.TopTags[1].Name, "ties stay in first-encountered order")
	assert.Equal(t, "alpha", s.TopTags[2].Name)
}

func TestAggregateEmptySet(t *testing.T) {
	s := Aggregate(nil)

	assert.Equal(t, 0, s.TotalBooks)
	assert.Equal(t, 0, s.UniqueAuthors)
	assert.Nil(t, s.TopTags)
	assert.Nil(t, s.TopLanguages)
}
