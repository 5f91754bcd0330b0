package format

import "errors"

var (
	// ErrSignatureMismatch indicates the dump does not start with "SCHM".
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a record.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnsupportedVersion indicates a dump written by a newer layout.
	ErrUnsupportedVersion = errors.New("format: unsupported version")
	// ErrNameTooLong indicates a name that does not fit the u16 length prefix.
	ErrNameTooLong = errors.New("format: name too long")
	// ErrTrailingData indicates bytes left over after the last class record.
	ErrTrailingData = errors.New("format: trailing data")
)
