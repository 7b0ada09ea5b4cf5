package move

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestFromString(t *testing.T) {
	is := is.New(t)
	testcases := []struct {
		text string
		m    Move
	}{
		{"a1", New(0, 0)},
		{"h8", New(7, 7)},
		{"d3", New(2, 3)},
		{"c5", New(4, 2)},
	}
	for _, tc := range testcases {
		m, err := FromString(tc.text)
		is.NoErr(err)
		is.Equal(m, tc.m)
		is.Equal(m.String(), tc.text)
	}
}

func TestFromStringErrors(t *testing.T) {
	is := is.New(t)
	for _, text := range []string{"", "a", "a10", "d33"} {
		_, err := FromString(text)
		is.True(errors.Is(err, ErrBadMoveLength))
	}
	for _, text := range []string{"i1", "a0", "a9", "A1", "11"} {
		_, err := FromString(text)
		is.True(errors.Is(err, ErrMoveOutOfRange))
	}
}

func TestIndexRoundTrip(t *testing.T) {
	is := is.New(t)
	for i := 0; i < BoardDim*BoardDim; i++ {
		m := FromIndex(i)
		is.True(m.InBounds())
		is.Equal(m.Index(), i)
	}
	is.True(!New(-1, 0).InBounds())
	is.True(!New(0, 8).InBounds())
}
