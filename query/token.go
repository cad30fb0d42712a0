package query

// Kind identifies the lexical class of a token.
type Kind uint8

const (
	// KindTerm is a bare run of non-whitespace characters.
	KindTerm Kind = iota
	// KindPhrase is a double-quoted value with quotes stripped and inner
	// spaces preserved. Quoting only affects tokenization: phrases match
	// with the same substring test as terms.
	KindPhrase
	// KindOperator is one of the boolean keywords AND, OR or NOT. Operator
	// tokens are consumed by the lexer and are never searchable as text.
	KindOperator
)

// String returns the kind name for debugging.
func (k Kind) String() string {
	switch k {
	case KindTerm:
		return "term"
	case KindPhrase:
		return "phrase"
	case KindOperator:
		return "operator"
	default:
		return "invalid"
	}
}

// Field scopes a token to one record field. The zero value FieldAny matches
// against title, author display string, every tag and publisher.
type Field uint8

const (
	// FieldAny is an unscoped token.
	FieldAny Field = iota
	// FieldTitle matches the title and the title sort key.
	FieldTitle
	// FieldAuthor matches the author display string and the author sort key.
	FieldAuthor
	// FieldTag matches each tag element independently.
	FieldTag
	// FieldPublisher matches the publisher only.
	FieldPublisher
)

// String returns the field prefix name, or "" for FieldAny.
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldAuthor:
		return "author"
	case FieldTag:
		return "tag"
	case FieldPublisher:
		return "publisher"
	default:
		return ""
	}
}

// fieldByName resolves a case-insensitive field prefix. ok is false for
// unrecognized names, in which case the lexer degrades the whole chunk to an
// ordinary term.
func fieldByName(name string) (Field, bool) {
	switch len(name) {
	case 3:
		if equalFoldASCII(name, "tag") {
			return FieldTag, true
		}
	case 5:
		if equalFoldASCII(name, "title") {
			return FieldTitle, true
		}
	case 6:
		if equalFoldASCII(name, "author") {
			return FieldAuthor, true
		}
	case 9:
		if equalFoldASCII(name, "publisher") {
			return FieldPublisher, true
		}
	}
	return FieldAny, false
}

// Token is one immutable lexical unit of a parsed query.
type Token struct {
	// Kind is the lexical class.
	Kind Kind
	// Value is the token text. For operators it is canonicalized to upper
	// case ("AND", "OR", "NOT").
	Value string
	// Field scopes non-operator tokens; FieldAny for unscoped ones.
	Field Field
	// Negated is true iff the token carried a leading "-" prefix. It
	// inverts the per-token match result, not the combined query result.
	Negated bool
}

// IsOperator reports whether the token is the given boolean keyword.
func (t Token) IsOperator(op string) bool {
	return t.Kind == KindOperator && t.Value == op
}

func equalFoldASCII(s, target string) bool {
	if len(s) != len(target) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != target[i] {
			return false
		}
	}
	return true
}
