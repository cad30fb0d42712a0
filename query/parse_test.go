package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []Token
	}{
		{"Empty", "", nil},
		{"WhitespaceOnly", "   \t \n ", nil},
		{
			"SingleTerm",
			"hobbit",
			[]Token{{Kind: KindTerm, Value: "hobbit"}},
		},
		{
			"TwoTerms",
			"the hobbit",
			[]Token{
				{Kind: KindTerm, Value: "the"},
				{Kind: KindTerm, Value: "hobbit"},
			},
		},
		{
			"Phrase",
			`"the hobbit"`,
			[]Token{{Kind: KindPhrase, Value: "the hobbit"}},
		},
		{
			"UnterminatedPhrase",
			`"the hobbit`,
			[]Token{{Kind: KindPhrase, Value: "the hobbit"}},
		},
		{
			"FieldTerm",
			"title:hobbit",
			[]Token{{Kind: KindTerm, Value: "hobbit", Field: FieldTitle}},
		},
		{
			"FieldCaseInsensitive",
			"TAG:fantasy",
			[]Token{{Kind: KindTerm, Value: "fantasy", Field: FieldTag}},
		},
		{
			"FieldPhrase",
			`author:"ann lee"`,
			[]Token{{Kind: KindPhrase, Value: "ann lee", Field: FieldAuthor}},
		},
		{
			"NegatedTerm",
			"-hobbit",
			[]Token{{Kind: KindTerm, Value: "hobbit", Negated: true}},
		},
		{
			"NegatedFieldTerm",
			"-tag:fantasy",
			[]Token{{Kind: KindTerm, Value: "fantasy", Field: FieldTag, Negated: true}},
		},
		{
			"Operators",
			"a AND b or c",
			[]Token{
				{Kind: KindTerm, Value: "a"},
				{Kind: KindOperator, Value: "AND"},
				{Kind: KindTerm, Value: "b"},
				{Kind: KindOperator, Value: "OR"},
				{Kind: KindTerm, Value: "c"},
			},
		},
		{
			"NotKeyword",
			"not hobbit",
			[]Token{
				{Kind: KindOperator, Value: "NOT"},
				{Kind: KindTerm, Value: "hobbit"},
			},
		},
		{
			"QuotedKeywordStaysSearchable",
			`"AND"`,
			[]Token{{Kind: KindPhrase, Value: "AND"}},
		},
		{
			"FieldedKeywordStaysSearchable",
			"title:OR",
			[]Token{{Kind: KindTerm, Value: "OR", Field: FieldTitle}},
		},
		{
			"NegatedKeywordStaysSearchable",
			"-and",
			[]Token{{Kind: KindTerm, Value: "and", Negated: true}},
		},
		{
			"UnknownFieldIsLiteral",
			"isbn:12345",
			[]Token{{Kind: KindTerm, Value: "isbn:12345"}},
		},
		{
			"BareColonIsLiteral",
			":",
			[]Token{{Kind: KindTerm, Value: ":"}},
		},
		{
			"URLIsLiteral",
			"https://example.com",
			[]Token{{Kind: KindTerm, Value: "https://example.com"}},
		},
		{
			"DanglingFieldPrefixIsLiteral",
			"tag:",
			[]Token{{Kind: KindTerm, Value: "tag:"}},
		},
		{
			"DanglingMinusIsLiteral",
			"-",
			[]Token{{Kind: KindTerm, Value: "-"}},
		},
		{
			"EmptyPhrase",
			`""`,
			[]Token{{Kind: KindPhrase, Value: ""}},
		},
		{
			"Mixed",
			`-author:tolkien "epic fantasy" OR tag:dragons`,
			[]Token{
				{Kind: KindTerm, Value: "tolkien", Field: FieldAuthor, Negated: true},
				{Kind: KindPhrase, Value: "epic fantasy"},
				{Kind: KindOperator, Value: "OR"},
				{Kind: KindTerm, Value: "dragons", Field: FieldTag},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.query))
		})
	}
}

func TestParseNeverDropsText(t *testing.T) {
	// Everything except bare boolean keywords must survive tokenization.
	tokens := Parse("foo AND bar:baz -qux")
	var nonOps int
	for _, tok := range tokens {
		if tok.Kind != KindOperator {
			nonOps++
		}
	}
	assert.Equal(t, 3, nonOps)
}

func BenchmarkParse(b *testing.B) {
	q := `-author:tolkien "epic fantasy" OR tag:dragons title:hobbit publisher:allen`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Parse(q)
	}
}
