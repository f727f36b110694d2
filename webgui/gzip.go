package webgui

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
)

// Inflate decompresses a gzip stream and returns it as text.
func Inflate(data []byte) (string, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", &CorruptDataError{Err: err}
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", &CorruptDataError{Err: err}
	}
	if !utf8.Valid(raw) {
		return "", &EncodingError{Offset: firstInvalidUTF8(raw)}
	}
	return string(raw), nil
}

// Deflate compresses text with gzip at the best compression level. The
// device serves the result as-is with Content-Encoding: gzip.
func Deflate(text string) ([]byte, error) {
	var out bytes.Buffer
	writer, err := gzip.NewWriterLevel(&out, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(writer, text); err != nil {
		writer.Close()
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func firstInvalidUTF8(raw []byte) int {
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
