package bibgo

import "errors"

var (
	// ErrInvalidDocument is returned (wrapped) by LoadFile and LoadReader
	// when the library document is structurally invalid. The underlying
	// *ingest.FormatError carries the descriptive reason.
	ErrInvalidDocument = errors.New("invalid library document")
)
