// Package record defines the bibliographic record type shared by all bibgo
// packages.
//
// A record set is loaded wholesale (see the ingest package) and treated as
// immutable afterwards. Derived views such as the split author list, the
// parsed timestamp and the language list are computed at read time rather than
// stored, keeping the on-disk shape identical to the source document.
package record
