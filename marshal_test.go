package rawpoly

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

func TestTermsSerialization(t *testing.T) {
	assert := require.New(t)

	src := Terms{{1, 0, 2}, {0, 1, 0}, {3, 3, 3}}

	var bb bytes.Buffer
	n, err := src.WriteTo(&bb)
	assert.NoError(err)
	assert.Equal(int64(bb.Len()), n)

	var dst Terms
	n, err = dst.ReadFrom(bytes.NewReader(bb.Bytes()))
	assert.NoError(err)
	assert.Equal(int64(bb.Len()), n)

	assert.Equal(src, dst)
}

func TestTermsReadFromRejectsInvalid(t *testing.T) {
	assert := require.New(t)

	encode := func(rows [][]int) []byte {
		b, err := cbor.Marshal(rows)
		assert.NoError(err)
		return b
	}

	dst := Terms{{7}}

	_, err := dst.ReadFrom(bytes.NewReader(encode([][]int{{1, 0}, {2}})))
	assert.Error(err)
	assert.Equal(Terms{{7}}, dst, "failed read must not overwrite the destination")

	_, err = dst.ReadFrom(bytes.NewReader(encode([][]int{{1, -2}})))
	assert.Error(err)
	assert.Equal(Terms{{7}}, dst)

	_, err = dst.ReadFrom(bytes.NewReader([]byte{0xff, 0xff}))
	assert.Error(err)
}
