package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	o := Of("value")

	assert.True(t, o.IsPresent())

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	v, err := o.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, "value", o.OrElse("fallback"))
}

func TestEmpty(t *testing.T) {
	o := Empty[*int]()

	assert.False(t, o.IsPresent())

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Nil(t, v)

	_, err := o.Unwrap()
	assert.ErrorIs(t, err, ErrAbsent)

	fallback := 7
	assert.Equal(t, &fallback, o.OrElse(&fallback))
}

func TestZeroValueIsAbsent(t *testing.T) {
	var o Optional[string]

	assert.False(t, o.IsPresent())
}

func TestOf_NilPointerIsStillPresent(t *testing.T) {
	o := Of[*int](nil)

	assert.True(t, o.IsPresent())
}
