// internal/pkg/tabular/codec.go

// Package tabular converts uniform flat records to and from the dashboard's
// delimited text format.
//
// The format is deliberately NOT RFC 4180 compliant: string values are
// wrapped in double quotes but embedded quotes, commas and newlines are not
// escaped, and decoding splits rows on newline and fields on comma without
// quoted-field awareness. Decode(Encode(records)) reproduces the input only
// for scalar fields free of those delimiters; that is a correctness boundary,
// not a guarantee.
package tabular

import (
	"fmt"
	"strings"

	xerrors "rentsmart-service/internal/pkg/errors"
)

// Encode serializes records to delimited text. The header row is the first
// record's field order; every following record is emitted in that same
// order. Uniform shape across records is a precondition; a record with a
// different key set fails with ErrShapeMismatch instead of silently
// misaligning columns.
func Encode(records []*Record) (string, error) {
	if len(records) == 0 {
		return "", xerrors.ErrInsufficientData
	}

	header := records[0].Keys()
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))

	for i, rec := range records {
		if !rec.sameShape(header) {
			return "", fmt.Errorf("record %d: %w", i, xerrors.ErrShapeMismatch)
		}
		b.WriteByte('\n')
		for j, key := range header {
			if j > 0 {
				b.WriteByte(',')
			}
			v, _ := rec.Get(key)
			if s, ok := v.(string); ok {
				b.WriteByte('"')
				b.WriteString(s)
				b.WriteByte('"')
			} else {
				b.WriteString(FormatValue(v))
			}
		}
	}
	return b.String(), nil
}

// Decode parses delimited text back into records. The first row is the
// header; blank lines are skipped; each value is coerced number → float64,
// true/false → bool, else string. A row whose column count differs from the
// header fails the whole decode with ErrShapeMismatch.
func Decode(text string) ([]*Record, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, xerrors.ErrInsufficientData
	}

	header := strings.Split(lines[0], ",")
	var records []*Record
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != len(header) {
			return nil, fmt.Errorf("line %d: %d columns, header has %d: %w",
				i+2, len(fields), len(header), xerrors.ErrShapeMismatch)
		}
		rec := NewRecord()
		for j, key := range header {
			value := fields[j]
			if strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) && len(value) >= 2 {
				rec.Set(key, value[1:len(value)-1])
				continue
			}
			rec.Set(key, Coerce(value))
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, xerrors.ErrInsufficientData
	}
	return records, nil
}
