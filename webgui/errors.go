package webgui

import (
	"errors"
	"fmt"
)

// ErrMissingAsset is returned when the source file has no GUI_HTML[] array.
var ErrMissingAsset = errors.New("GUI_HTML array not found")

// ParseError reports a token of the array literal that is not a byte value.
type ParseError struct {
	Index int
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid byte value %q at index %d", e.Token, e.Index)
}

// CorruptDataError reports an embedded asset that is not a valid gzip stream.
type CorruptDataError struct {
	Err error
}

func (e *CorruptDataError) Error() string {
	return "corrupt gzip stream: " + e.Err.Error()
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// EncodingError reports decompressed content that is not valid UTF-8.
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("decompressed asset is not valid utf-8 (offset %d)", e.Offset)
}

type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + " failed: " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }
