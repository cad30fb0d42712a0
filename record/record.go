package record

import (
	"strings"
	"time"
)

// Record is one bibliographic entry of a loaded library.
//
// A Record is immutable once loaded: the library replaces the whole record
// set on reload and never mutates entries in place. ID is the only field
// guaranteed to be present and unique; every other field may be empty.
type Record struct {
	// ID is the stable, unique identifier within one loaded set.
	ID int `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// TitleSort is the sortable form of the title (e.g. "Hobbit, The").
	TitleSort string `json:"sort,omitempty"`

	// Authors is the ampersand-joined display list ("Ann Lee & Bo Kim").
	Authors string `json:"authors,omitempty"`

	// AuthorSort is the sortable form of the author list.
	AuthorSort string `json:"author_sort,omitempty"`

	// Publisher is the publisher display name.
	Publisher string `json:"publisher,omitempty"`

	// AddedAt is the timestamp the entry was added to the library, as it
	// appeared in the source document. It is parsed lazily; see AddedTime.
	AddedAt string `json:"timestamp,omitempty"`

	// Tags is the ordered tag list. Tags are kept as-is: they are not
	// deduplicated and may carry surrounding whitespace.
	Tags []string `json:"tags,omitempty"`

	// Formats lists the file-type codes ("EPUB", "pdf", ...). Comparisons
	// against formats are always case-insensitive.
	Formats []string `json:"formats,omitempty"`

	// Languages is the comma-joined list of language codes.
	Languages string `json:"languages,omitempty"`
}

// addedAtLayouts are tried in order when parsing AddedAt.
var addedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// AddedTime parses AddedAt. Unparseable or empty timestamps yield the zero
// time so that comparisons during sorting never fail: such records simply
// order as the oldest possible value.
func (r *Record) AddedTime() time.Time {
	if r.AddedAt == "" {
		return time.Time{}
	}
	for _, layout := range addedAtLayouts {
		if t, err := time.Parse(layout, r.AddedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}

// AuthorList splits the display author string on "&", trims each segment and
// drops empty ones. Each segment counts as one distinct author. This is a
// read-time derivation for display and aggregation, not a stored relation.
func (r *Record) AuthorList() []string {
	if r.Authors == "" {
		return nil
	}
	parts := strings.Split(r.Authors, "&")
	authors := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			authors = append(authors, p)
		}
	}
	return authors
}

// LanguageList splits the comma-joined language field and trims each code.
// An empty field yields nil; callers that need a display value substitute
// "Unknown" (see the stats package).
func (r *Record) LanguageList() []string {
	if r.Languages == "" {
		return nil
	}
	parts := strings.Split(r.Languages, ",")
	langs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			langs = append(langs, p)
		}
	}
	return langs
}

// HasFormat reports whether the record carries the given file-type code,
// compared case-insensitively.
func (r *Record) HasFormat(format string) bool {
	for _, f := range r.Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// HasTag reports whether the record carries the given tag. Both sides are
// compared after trimming surrounding whitespace.
func (r *Record) HasTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	for _, t := range r.Tags {
		if strings.TrimSpace(t) == tag {
			return true
		}
	}
	return false
}
