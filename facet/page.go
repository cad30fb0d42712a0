package facet

import "github.com/hupe1980/bibgo/record"

// DefaultPageSize is the page size used by the top-level Library when not
// configured otherwise.
const DefaultPageSize = 24

// TotalPages returns ceil(count / pageSize). Zero records yield zero pages.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate slices one 1-indexed page out of an ordered record sequence. It
// is a pure slicing operation: the returned slice aliases the input. Pages
// outside the valid range yield an empty result.
func Paginate(records []record.Record, page, pageSize int) []record.Record {
	if page < 1 || pageSize <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return nil
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
