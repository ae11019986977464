// SPDX-License-Identifier: MIT

// Package sparse - strict text codec.
//
// Format (bit-exact on output):
//
//	rows=<integer>
//	cols=<integer>
//	(<row>, <col>, <value>)
//	...
//
// Reader rules:
//   - blank lines are dropped before anything else, wherever they appear;
//   - the first two remaining lines are the rows= and cols= headers, in that order;
//   - whitespace around entry fields is trimmed;
//   - a zero value is accepted but stores nothing;
//   - repeated coordinates follow the DuplicatePolicy (last write wins by default).
//
// Decoding is all-or-nothing: on failure no matrix is returned.
// Writer emits entries in row-major order with ", " between fields and never writes zeros.

package sparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	ctxDecode    = "Decode"
	ctxEncode    = "Encode"
	ctxReadFile  = "ReadFile"
	ctxWriteFile = "WriteFile"

	// maxLineBytes bounds a single source line for the scanner.
	maxLineBytes = 1 << 20
)

// sourceLine is a non-blank, trimmed line with its 1-based position in the source.
type sourceLine struct {
	no   int
	text string
}

// Decode reads a matrix from r. Any violation yields a *FormatError (errors.Is ErrFormat).
// I/O failures of r are returned wrapped, not as format errors.
func Decode(r io.Reader, opts ...Option) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var raw []string
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, sparseErrorf(ctxDecode, err)
	}

	return DecodeLines(raw, opts...)
}

// DecodeString is Decode over an in-memory string.
func DecodeString(s string, opts ...Option) (*Matrix, error) {
	return Decode(strings.NewReader(s), opts...)
}

// DecodeLines parses an already split source (one element per line).
func DecodeLines(lines []string, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	src := make([]sourceLine, 0, len(lines))
	for i, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			src = append(src, sourceLine{no: i + 1, text: t})
		}
	}
	if len(src) < minLines {
		return nil, &FormatError{Reason: "insufficient lines"}
	}

	rows, err := decodeHeader(src[0], headerRows, o)
	if err != nil {
		return nil, err
	}
	cols, err := decodeHeader(src[1], headerCols, o)
	if err != nil {
		return nil, err
	}

	m := newMatrix(rows, cols, len(src)-minLines)
	var seen map[key]struct{}
	if o.duplicates == DuplicateReject {
		seen = make(map[key]struct{}, len(src)-minLines)
	}

	for _, sl := range src[minLines:] {
		k, v, perr := parseEntry(sl.text, rows, cols)
		if perr != nil {
			return nil, &FormatError{Line: sl.no, Text: sl.text, Reason: perr.Error()}
		}
		if seen != nil {
			if _, dup := seen[k]; dup {
				return nil, &FormatError{
					Line:   sl.no,
					Text:   sl.text,
					Reason: fmt.Sprintf("coordinate (%d, %d) repeats", k.row, k.col),
					err:    ErrDuplicateEntry,
				}
			}
			seen[k] = struct{}{}
		}
		m.put(k, v)
	}

	return m, nil
}

// decodeHeader applies the header rule and the optional size limit.
func decodeHeader(sl sourceLine, name string, o Options) (int, error) {
	n, err := parseHeader(sl.text, name)
	if err != nil {
		return 0, &FormatError{Line: sl.no, Text: sl.text, Reason: err.Error()}
	}
	if o.maxDimension > 0 && n > o.maxDimension {
		return 0, &FormatError{
			Line:   sl.no,
			Text:   sl.text,
			Reason: fmt.Sprintf("%s=%d exceeds limit %d", name, n, o.maxDimension),
		}
	}

	return n, nil
}

// EncodeLines returns the canonical encoding, one element per line, no newlines.
func (m *Matrix) EncodeLines() []string {
	keys := m.sortedKeys()
	out := make([]string, 0, len(keys)+minLines)
	out = append(out,
		headerRows+headerSep+strconv.Itoa(m.rows),
		headerCols+headerSep+strconv.Itoa(m.cols),
	)
	for _, k := range keys {
		out = append(out, Entry{Row: k.row, Col: k.col, Value: m.values[k]}.String())
	}

	return out
}

// Encode writes the canonical encoding to w, each line terminated by '\n'.
func (m *Matrix) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range m.EncodeLines() {
		if _, err := bw.WriteString(line); err != nil {
			return sparseErrorf(ctxEncode, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return sparseErrorf(ctxEncode, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return sparseErrorf(ctxEncode, err)
	}

	return nil
}

// ReadFile opens path, decodes it and always closes the handle.
func ReadFile(path string, opts ...Option) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sparseErrorf(ctxReadFile, err)
	}
	defer f.Close()

	m, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", ctxReadFile, path, err)
	}

	return m, nil
}

// WriteFile creates (or truncates) path and writes m's encoding to it.
// A failing Close is reported when the write itself succeeded.
func WriteFile(path string, m *Matrix) (err error) {
	if m == nil {
		return sparseErrorf(ctxWriteFile, ErrNilMatrix)
	}
	f, err := os.Create(path)
	if err != nil {
		return sparseErrorf(ctxWriteFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = sparseErrorf(ctxWriteFile, cerr)
		}
	}()

	if err = m.Encode(f); err != nil {
		return fmt.Errorf("%s(%s): %w", ctxWriteFile, path, err)
	}

	return nil
}

// IsFormatError reports whether err carries a *FormatError and returns it.
func IsFormatError(err error) (*FormatError, bool) {
	var fe *FormatError
	ok := errors.As(err, &fe)

	return fe, ok
}
