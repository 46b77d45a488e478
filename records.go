package fabric

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is one measured fabric: its eigenvalues and a weight which is
// only used to color the sample on the plot.
type Record struct {
	Eigen
	Weight float64
}

// Normalize returns the record with its eigenvalues normalized.
func (r Record) Normalize() Record {
	r.Eigen = r.Eigen.Normalize()
	return r
}

// Eigens returns the eigen-systems of the records.
func Eigens(recs []Record) []Eigen {
	eigs := make([]Eigen, len(recs))
	for i, r := range recs {
		eigs[i] = r.Eigen
	}
	return eigs
}

type readOptions struct {
	comma     rune
	comment   rune
	normalize bool
}

// ReadOption customizes ReadRecords.
type ReadOption func(*readOptions)

// WithDelimiter sets the field delimiter. Defaults to a comma.
// Runs of blanks count as one delimiter when the delimiter is a space or tab.
func WithDelimiter(r rune) ReadOption {
	return func(o *readOptions) { o.comma = r }
}

// WithComment sets the rune starting a comment line. Defaults to '#'.
func WithComment(r rune) ReadOption {
	return func(o *readOptions) { o.comment = r }
}

// WithoutNormalize keeps the eigenvalues as read.
func WithoutNormalize() ReadOption {
	return func(o *readOptions) { o.normalize = false }
}

// ReadRecords parses delimited e1, e2, e3[, weight] lines. A missing weight
// defaults to 1. A first line whose fields are all non numeric is taken as a header.
func ReadRecords(r io.Reader, opts ...ReadOption) ([]Record, error) {
	o := readOptions{comma: ',', comment: '#', normalize: true}
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.Comment = o.comment
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var recs []Record
	for first := true; ; first = false {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		line, _ := cr.FieldPos(0)
		fields = trimFields(fields, o.comma == ' ' || o.comma == '\t')
		if first && isHeader(fields) {
			continue
		}
		rec, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if o.normalize {
			rec = rec.Normalize()
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// trimFields trims the fields. With blank delimiters the empty fields
// produced by repeated blanks are dropped; otherwise they are kept so that
// a missing value is reported instead of shifting the columns.
func trimFields(fields []string, blank bool) []string {
	out := fields[:0]
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if blank && f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// isHeader reports whether none of the fields is a number.
func isHeader(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err == nil {
			return false
		}
	}
	return true
}

func parseRecord(fields []string) (Record, error) {
	if len(fields) < 3 || len(fields) > 4 {
		return Record{}, fmt.Errorf("%w: expected 3 or 4 fields, got %d", ErrBadRecord, len(fields))
	}
	var v [4]float64
	v[3] = 1
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: field %d: %q", ErrBadRecord, i+1, f)
		}
		v[i] = x
	}
	return Record{Eigen: Eigen{E1: v[0], E2: v[1], E3: v[2]}, Weight: v[3]}, nil
}

// WriteGrid writes the grid as tab separated x, y, value lines, row by row.
// Nodes outside the triangle are written as NaN.
func WriteGrid(w io.Writer, g *Grid) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	for j := 0; j < g.N; j++ {
		for i := 0; i < g.N; i++ {
			x, y, z := g.At(i, j)
			err := cw.Write([]string{
				strconv.FormatFloat(x, 'g', -1, 64),
				strconv.FormatFloat(y, 'g', -1, 64),
				strconv.FormatFloat(z, 'g', -1, 64),
			})
			if err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
