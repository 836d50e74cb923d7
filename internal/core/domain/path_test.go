package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcollect/internal/core/domain"
)

func TestDependencyPath_Equality(t *testing.T) {
	a := domain.NewDependencyPath("/lib/libc.so.6")
	b := domain.NewDependencyPath("/lib/libc.so.6")
	c := domain.NewDependencyPath("/lib/../lib/libc.so.6")

	assert.Equal(t, a, b)
	// No normalization is applied.
	assert.NotEqual(t, a, c)
	assert.Equal(t, "/lib/libc.so.6", a.String())
}

func TestDependencyPath_Zero(t *testing.T) {
	var p domain.DependencyPath
	assert.True(t, p.IsZero())
	assert.Empty(t, p.String())
	assert.False(t, domain.NewDependencyPath("").IsZero())
}

func TestDependencyPath_JSON(t *testing.T) {
	original := domain.NewDependencyPath("/usr/lib/libssl.so.3")

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `"/usr/lib/libssl.so.3"`, string(data))

	var decoded domain.DependencyPath
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestPaths(t *testing.T) {
	got := domain.Paths("/a", "/b")
	require.Len(t, got, 2)
	assert.Equal(t, "/a", got[0].String())
	assert.Equal(t, "/b", got[1].String())
}
