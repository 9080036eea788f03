package csvparser

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/config"
)

// utf8BOM is stripped from the start of utf-8 input.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// encodingError reports input bytes that are not valid in the configured encoding.
type encodingError struct {
	encoding string
	offset   int
	line     int
}

func (e *encodingError) Error() string {
	return fmt.Sprintf("invalid %s byte sequence at offset %d", e.encoding, e.offset)
}

// decode reads all of r and returns it as UTF-8.
//
// utf-8 input has a leading byte order mark removed and must be valid UTF-8.
// ascii input must contain only 7-bit bytes. latin-1 and windows-1252 are
// single-byte charsets where every byte decodes, so they never fail.
func decode(r io.Reader, name string) ([]byte, error) {
	encoding, err := config.NormalizeEncoding(name)
	if err != nil {
		return nil, err
	}

	switch encoding {
	case config.EncodingLatin1:
		return io.ReadAll(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))

	case config.EncodingWindows1252:
		return io.ReadAll(transform.NewReader(r, charmap.Windows1252.NewDecoder()))

	case config.EncodingASCII:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		for i, b := range data {
			if b >= utf8.RuneSelf {
				return nil, &encodingError{encoding: encoding, offset: i, line: lineAt(data, i)}
			}
		}
		return data, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if offset := invalidUTF8Offset(data); offset >= 0 {
		return nil, &encodingError{encoding: encoding, offset: offset, line: lineAt(data, offset)}
	}
	return data, nil
}

// invalidUTF8Offset returns the offset of the first invalid UTF-8 sequence, or -1.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// lineAt returns the 1-based line containing offset.
func lineAt(data []byte, offset int) int {
	return bytes.Count(data[:offset], []byte{'\n'}) + 1
}
