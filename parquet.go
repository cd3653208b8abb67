/*
Package vparquet decodes parquet column pages encoded with the PLAIN encoding
into dense, typed column vectors.

Reading

ColumnPages reads page headers and bodies from a stream, verifying checksums
and decompressing the page data. ColumnReader drives a plain.Reader across the
pages of a column, moving values into vectors in bulk. ReadColumns decodes
independent columns concurrently.

Writing

PageWriter produces streams of PLAIN data pages, which is mostly useful to
generate test data.

Tooling

The program at ./cmd/ptools generates and dumps page streams.
*/
package vparquet

import "errors"

var (
	// ErrCorrupted is an error returned when a page header is inconsistent or
	// when the CRC checksum recorded in a page header does not match the one
	// computed from the page data.
	ErrCorrupted = errors.New("corrupted")
)
