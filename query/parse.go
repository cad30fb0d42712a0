package query

import "strings"

// Parse tokenizes a free-text search query in a single left-to-right scan.
//
// Lexing rules, in order:
//
//  1. An optional leading "-" marks negation for the token that follows.
//  2. An optional "field:" prefix (title, author, tag, publisher;
//     case-insensitive) scopes the value to that field.
//  3. The value is either a double-quoted phrase (quotes stripped, spaces
//     preserved) or a run of non-whitespace characters.
//  4. A bare unquoted, unfielded, unnegated value equal to AND, OR or NOT
//     (case-insensitive) becomes an operator token instead of a term.
//
// Parse never fails: the input is untrusted free text and malformed syntax
// degrades to literal terms. An unrecognized field prefix stays part of the
// term ("isbn:123" is one term), a prefix with no value ("tag:" at the end
// of input) is emitted as the literal chunk, and an unterminated quote runs
// to the end of the input. An empty or whitespace-only query yields no
// tokens.
func Parse(q string) []Token {
	var tokens []Token

	i, n := 0, len(q)
	for i < n {
		for i < n && isSpace(q[i]) {
			i++
		}
		if i >= n {
			break
		}

		start := i

		negated := false
		if q[i] == '-' {
			negated = true
			i++
		}

		field := FieldAny
		fielded := false
		if j := scanFieldPrefix(q, i); j > i {
			if f, ok := fieldByName(q[i : j-1]); ok {
				field = f
				fielded = true
				i = j
			}
		}

		var value string
		kind := KindTerm
		if i < n && q[i] == '"' {
			kind = KindPhrase
			i++
			if end := strings.IndexByte(q[i:], '"'); end >= 0 {
				value = q[i : i+end]
				i += end + 1
			} else {
				value = q[i:]
				i = n
			}
		} else {
			j := i
			for j < n && !isSpace(q[j]) {
				j++
			}
			value = q[i:j]
			i = j
		}

		// Boolean keywords are consumed only in their bare form: quoting,
		// a field prefix or a negation prefix keeps them searchable text.
		if kind == KindTerm && !fielded && !negated {
			if op, ok := operatorKeyword(value); ok {
				tokens = append(tokens, Token{Kind: KindOperator, Value: op})
				continue
			}
		}

		// A prefix with nothing behind it ("-", "tag:") degrades to the
		// literal chunk so no input text is dropped.
		if kind == KindTerm && value == "" {
			tokens = append(tokens, Token{Kind: KindTerm, Value: q[start:i]})
			continue
		}

		tokens = append(tokens, Token{Kind: kind, Value: value, Field: field, Negated: negated})
	}

	return tokens
}

// scanFieldPrefix returns the index just past a "name:" prefix starting at i,
// or i if the upcoming run has no colon before whitespace, a quote or the end
// of input.
func scanFieldPrefix(q string, i int) int {
	for j := i; j < len(q); j++ {
		c := q[j]
		switch {
		case c == ':':
			return j + 1
		case isSpace(c) || c == '"':
			return i
		case !isLetter(c):
			return i
		}
	}
	return i
}

func operatorKeyword(value string) (string, bool) {
	switch {
	case equalFoldASCII(value, "and"):
		return "AND", true
	case equalFoldASCII(value, "or"):
		return "OR", true
	case equalFoldASCII(value, "not"):
		return "NOT", true
	default:
		return "", false
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
