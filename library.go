package bibgo

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/hupe1980/bibgo/facet"
	"github.com/hupe1980/bibgo/index"
	"github.com/hupe1980/bibgo/ingest"
	"github.com/hupe1980/bibgo/query"
	"github.com/hupe1980/bibgo/record"
	"github.com/hupe1980/bibgo/stats"
)

// Library is the top-level handle over one loaded record set.
//
// The record set is owned exclusively by the Library and replaced wholesale
// on load; it is never mutated in place. The set reference is swapped
// atomically, but the query pipeline itself (like its collator) is intended
// for single-goroutine use: invoke Filter and friends from one goroutine.
type Library struct {
	state atomic.Pointer[libraryState]

	pipeline *facet.Pipeline
	pageSize int
	logger   *Logger
	metrics  MetricsCollector
}

// libraryState bundles a record set with the facet index derived from it, so
// both are always swapped together.
type libraryState struct {
	records []record.Record
	facets  *index.Facets
}

// New creates an empty Library. Load records with Replace, LoadFile or
// LoadReader.
func New(optFns ...Option) *Library {
	o := applyOptions(optFns)

	l := &Library{
		pipeline: facet.New(o.locale),
		pageSize: o.pageSize,
		logger:   o.logger,
		metrics:  o.metricsCollector,
	}
	l.state.Store(&libraryState{facets: index.Build(nil)})

	return l
}

// Replace swaps in a new record set and rebuilds the derived facet index.
// The Library takes ownership of the slice; callers must not mutate it
// afterwards.
func (l *Library) Replace(records []record.Record) {
	start := time.Now()

	l.state.Store(&libraryState{
		records: records,
		facets:  index.Build(records),
	})

	l.metrics.RecordLoad(len(records), time.Since(start), nil)
	l.logger.LogLoad(len(records), nil)
}

// LoadFile loads a library document from disk and replaces the record set.
// On failure the current set stays untouched. Structural problems in the
// document are reported as errors wrapping ErrInvalidDocument.
func (l *Library) LoadFile(path string, optFns ...ingest.Option) error {
	start := time.Now()

	records, err := ingest.FromFile(path, optFns...)
	if err != nil {
		err = translateError(err)
		l.metrics.RecordLoad(0, time.Since(start), err)
		l.logger.LogLoad(0, err)
		return err
	}

	l.Replace(records)
	return nil
}

// LoadReader loads a library document from r and replaces the record set.
// Semantics match LoadFile.
func (l *Library) LoadReader(r io.Reader, optFns ...ingest.Option) error {
	start := time.Now()

	records, err := ingest.FromReader(r, optFns...)
	if err != nil {
		err = translateError(err)
		l.metrics.RecordLoad(0, time.Since(start), err)
		l.logger.LogLoad(0, err)
		return err
	}

	l.Replace(records)
	return nil
}

// Records returns the full record set in load order. The slice is shared;
// treat it as read-only.
func (l *Library) Records() []record.Record {
	return l.state.Load().records
}

// Len returns the number of loaded records.
func (l *Library) Len() int {
	return len(l.state.Load().records)
}

// Facets returns the facet index of the current record set.
func (l *Library) Facets() *index.Facets {
	return l.state.Load().facets
}

// Search runs a free-text query over the full set with default ordering.
// Shorthand for Filter with only the query criterion set.
func (l *Library) Search(q string) []record.Record {
	return l.Filter(facet.Criteria{Query: q})
}

// Filter applies the full criteria set and returns the ordered matches.
//
// Discrete criteria (format, tags) are compiled into a candidate bitmap via
// the facet index when active; the free-text stage and ordering then run
// only over candidates. The result is always identical to a pure
// facet.Pipeline.Apply over the full set.
func (l *Library) Filter(c facet.Criteria) []record.Record {
	start := time.Now()
	st := l.state.Load()

	var out []record.Record
	if cand, ok := st.facets.Compile(c); ok {
		tokens := query.Parse(c.Query)
		out = make([]record.Record, 0, cand.GetCardinality())
		for i := range st.records {
			if !cand.Contains(uint32(i)) {
				continue
			}
			if len(tokens) > 0 && !query.Matches(&st.records[i], tokens) {
				continue
			}
			out = append(out, st.records[i])
		}
		l.pipeline.Sort(out, c.Sort)
	} else {
		out = l.pipeline.Apply(st.records, c)
	}

	l.metrics.RecordFilter(len(out), time.Since(start))
	l.logger.LogFilter(c.Query, len(out))

	return out
}

// Page slices one 1-indexed page out of an ordered result and returns it
// together with the total page count under the configured page size.
func (l *Library) Page(records []record.Record, page int) ([]record.Record, int) {
	return facet.Paginate(records, page, l.pageSize),
		facet.TotalPages(len(records), l.pageSize)
}

// Stats aggregates the full record set, independent of any active filters.
func (l *Library) Stats() stats.Summary {
	start := time.Now()
	s := stats.Aggregate(l.state.Load().records)
	l.metrics.RecordAggregate(time.Since(start))
	l.logger.LogAggregate(s.TotalBooks)
	return s
}

// translateError unifies ingestion failures under the root sentinel.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var fe *ingest.FormatError
	if errors.As(err, &fe) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return err
}
