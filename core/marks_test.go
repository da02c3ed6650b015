package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptMark(t *testing.T) {
	for _, m := range []int{0, 1, 40, 99, 100} {
		got, err := AcceptMark(m)
		assert.NoError(t, err)
		assert.Equal(t, m, got)
	}

	for _, m := range []int{-1, 101, -100, 1000} {
		_, err := AcceptMark(m)
		assert.ErrorIs(t, err, ErrMarkOutOfRange, "mark %d", m)
	}
}

func TestParseMark(t *testing.T) {
	got, err := ParseMark(" 75 ")
	assert.NoError(t, err)
	assert.Equal(t, 75, got)

	_, err = ParseMark("101")
	assert.ErrorIs(t, err, ErrMarkOutOfRange)

	for _, raw := range []string{"", "abc", "75.5", "7 5"} {
		_, err := ParseMark(raw)
		assert.ErrorIs(t, err, ErrMarkNotInteger, "input %q", raw)
	}
}
