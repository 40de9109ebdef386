package rawpoly

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// WriteTo serializes the term matrix to w using canonical CBOR.
func (t Terms) WriteTo(w io.Writer) (int64, error) {
	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return 0, err
	}

	cw := &countWriter{w: w}
	if err := enc.NewEncoder(cw).Encode([][]int(t)); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// ReadFrom deserializes a term matrix from r. The decoded matrix is
// validated (rectangular, non-negative exponents) before t is overwritten;
// on error t is left untouched.
func (t *Terms) ReadFrom(r io.Reader) (int64, error) {
	dec := cbor.NewDecoder(r)

	var rows [][]int
	if err := dec.Decode(&rows); err != nil {
		return int64(dec.NumBytesRead()), err
	}
	if err := Terms(rows).Validate(); err != nil {
		return int64(dec.NumBytesRead()), fmt.Errorf("invalid term matrix: %w", err)
	}

	*t = rows
	return int64(dec.NumBytesRead()), nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
