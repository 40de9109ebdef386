package rawpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermsShape(t *testing.T) {
	terms := Terms{{1, 0, 2}, {0, 1, 0}}
	assert.Equal(t, 2, terms.NbMonomials())
	assert.Equal(t, 3, terms.NbVariables())

	assert.Equal(t, 0, Terms{}.NbMonomials())
	assert.Equal(t, 0, Terms{}.NbVariables())
}

func TestTermsValidate(t *testing.T) {
	assert := require.New(t)

	assert.NoError(Terms{{1, 0}, {0, 3}}.Validate())
	assert.NoError(Terms{}.Validate())

	assert.Error(Terms{{1, 0}, {2}}.Validate())
	assert.Error(Terms{{1, -1}}.Validate())
}

func TestTermsTotalDegree(t *testing.T) {
	terms := Terms{{1, 0, 2}, {0, 0, 0}, {3, 1, 1}}
	assert.Equal(t, 3, terms.TotalDegree(0))
	assert.Equal(t, 0, terms.TotalDegree(1))
	assert.Equal(t, 5, terms.TotalDegree(2))
}

func TestTermsUsedVariables(t *testing.T) {
	used := Terms{{1, 0, 0, 2}, {0, 0, 0, 1}}.UsedVariables()
	require.Equal(t, uint(2), used.Count())
	assert.True(t, used.Test(0))
	assert.False(t, used.Test(1))
	assert.False(t, used.Test(2))
	assert.True(t, used.Test(3))
}
