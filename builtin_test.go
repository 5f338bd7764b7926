package recycle_test

import (
	"io"
	"testing"

	"github.com/peczenyj/recycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ io.Writer = (*recycle.String)(nil)

func TestStringResetKeepsCapacity(t *testing.T) {
	t.Parallel()

	s := recycle.NewString()

	_, err := s.WriteString("some content")
	require.NoError(t, err)

	grown := s.Cap()
	require.GreaterOrEqual(t, grown, s.Len())

	s.Reset()

	assert.Zero(t, s.Len())
	assert.Equal(t, grown, s.Cap())

	s.Reset() // idempotent
	assert.Zero(t, s.Len())
}

func TestStringInitializeWithAppends(t *testing.T) {
	t.Parallel()

	s := recycle.NewString()

	s.InitializeWith("abc")
	require.Equal(t, "abc", s.String())

	// on a non-empty target the content is appended, not replaced
	s.InitializeWith("def")
	assert.Equal(t, "abcdef", s.String())
}

func TestStringWriters(t *testing.T) {
	t.Parallel()

	s := recycle.NewString()

	n, err := s.Write([]byte("ab"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.NoError(t, s.WriteByte('c'))

	n, err = s.WriteString("de")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	assert.Equal(t, "abcde", s.String())
	assert.Equal(t, 5, s.Len())
}

func TestStringGrow(t *testing.T) {
	t.Parallel()

	s := recycle.NewString()
	s.Grow(16)

	require.Equal(t, 16, s.Cap())
	require.Zero(t, s.Len())

	_, _ = s.WriteString("0123456789")
	s.Grow(16)

	assert.GreaterOrEqual(t, s.Cap(), 10+16)
	assert.Equal(t, "0123456789", s.String())
}

func TestVectorResetKeepsCapacity(t *testing.T) {
	t.Parallel()

	v := recycle.NewVector[string]()
	v.Append("a", "b", "c")

	require.Equal(t, 3, v.Len())
	grown := v.Cap()

	v.Reset()

	assert.Zero(t, v.Len())
	assert.Equal(t, grown, v.Cap())
}

func TestVectorAccessors(t *testing.T) {
	t.Parallel()

	v := recycle.NewVector[int]()
	v.Append(10, 20)
	v.Append(30)

	require.Equal(t, 3, v.Len())
	assert.Equal(t, 10, v.At(0))
	assert.Equal(t, 30, v.At(2))
	assert.Equal(t, []int{10, 20, 30}, v.Items())

	assert.Panics(t, func() { v.At(3) })
}

func TestVectorGrow(t *testing.T) {
	t.Parallel()

	v := recycle.NewVector[int]()
	v.Grow(8)

	require.Equal(t, 8, v.Cap())
	require.Zero(t, v.Len())

	v.Append(1, 2, 3)
	v.Grow(8)

	assert.GreaterOrEqual(t, v.Cap(), 3+8)
	assert.Equal(t, []int{1, 2, 3}, v.Items())
}
