// Package ingest loads library documents into record sets.
//
// A library document is a JSON document holding either a bare array of book
// objects or an object with a "books" array field. Documents may additionally
// be gzip- or lz4-compressed; compression is detected from magic bytes, so
// callers never declare it.
//
// Ingestion performs the one structural check the core relies on: the first
// element must carry a "title" string. Everything past that shape check is
// accepted as-is; the core tolerates empty fields and never validates
// record contents.
package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/bibgo/codec"
	"github.com/hupe1980/bibgo/record"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// FormatError describes a structurally invalid library document.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type FormatError struct {
	Reason string
	cause  error
}

func (e *FormatError) Error() string {
	return "invalid library document: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.cause }

type options struct {
	codec codec.Codec
}

// Option configures ingestion.
type Option func(*options)

// WithCodec configures the codec used for decoding the document.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{codec: codec.Default}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// FromFile loads a library document from disk.
func FromFile(path string, optFns ...Option) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open library document: %w", err)
	}
	defer f.Close()

	return FromReader(f, optFns...)
}

// FromReader loads a library document from r, reading it fully into memory.
func FromReader(r io.Reader, optFns ...Option) ([]record.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read library document: %w", err)
	}
	return FromBytes(data, optFns...)
}

// FromBytes decodes a library document. It fails with a *FormatError when
// the document is structurally invalid: not a book array (bare or under a
// "books" field), empty, or with a first element lacking a title string.
func FromBytes(data []byte, optFns ...Option) ([]record.Record, error) {
	o := applyOptions(optFns)

	data, err := decompress(data)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := o.codec.Unmarshal(data, &raw); err != nil {
		var wrapper struct {
			Books []json.RawMessage `json:"books"`
		}
		if err2 := o.codec.Unmarshal(data, &wrapper); err2 != nil || wrapper.Books == nil {
			return nil, &FormatError{
				Reason: `document is neither a book array nor an object with a "books" field`,
				cause:  err,
			}
		}
		raw = wrapper.Books
	}

	if len(raw) == 0 {
		return nil, &FormatError{Reason: "document contains no books"}
	}

	var probe struct {
		Title *string `json:"title"`
	}
	if err := o.codec.Unmarshal(raw[0], &probe); err != nil || probe.Title == nil {
		return nil, &FormatError{Reason: "first book lacks a title string", cause: err}
	}

	books := make([]record.Record, len(raw))
	for i, m := range raw {
		if err := o.codec.Unmarshal(m, &books[i]); err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("book at position %d is malformed", i), cause: err}
		}
	}

	return books, nil
}

// decompress unwraps gzip or lz4 framing when the magic bytes announce it,
// and passes plain documents through untouched.
func decompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, &FormatError{Reason: "corrupt gzip stream", cause: err}
		}
		defer zr.Close()

		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, &FormatError{Reason: "corrupt gzip stream", cause: err}
		}
		return out, nil

	case bytes.HasPrefix(data, lz4Magic):
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, &FormatError{Reason: "corrupt lz4 stream", cause: err}
		}
		return out, nil

	default:
		return data, nil
	}
}
