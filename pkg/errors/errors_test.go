package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := NewArithmetic("division by zero", nil)
	assert.Equal(t, "division by zero", err.Error())

	wrapped := NewMalformedInput("bad numeral", stderrors.New("unknown symbol"))
	assert.Equal(t, "bad numeral: unknown symbol", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := NewDomainRange("out of range", inner)
	assert.ErrorIs(t, err, inner)
}

func TestCodeOfThroughWrapping(t *testing.T) {
	err := fmt.Errorf("calling converter: %w", DomainRangef("got %d", -1))

	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrDomainRange, code)
	assert.True(t, IsCode(err, ErrDomainRange))
	assert.False(t, IsCode(err, ErrArithmetic))
}

func TestCodeOfNonAppError(t *testing.T) {
	_, ok := CodeOf(stderrors.New("plain"))
	assert.False(t, ok)
}
