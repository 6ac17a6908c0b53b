package slice

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestHead(t *testing.T) {
	assert.Equal(t, Head("a\nb\nc\nd\ne\n", 3), "a\nb\nc\n")
	assert.Equal(t, Head("a\nb\nc", 2), "a\nb")
	assert.Equal(t, Head("a\nb\nc\n", 10), "a\nb\nc\n")
	assert.Equal(t, Head("a\nb", 2), "a\nb")
	assert.Equal(t, Head("", 3), "")
	assert.Equal(t, Head("a\nb\n", 0), "")
}

func TestTailKeepsTrailingBreak(t *testing.T) {
	assert.Equal(t, Tail("a\nb\nc\nd\ne\n", 2), "d\ne\n")
	assert.Equal(t, Tail("a\nb\nc\n", 10), "a\nb\nc\n")
	assert.Equal(t, Tail("a\nb\nc\n", 1), "c\n")
}

func TestTailWithoutTrailingBreak(t *testing.T) {
	assert.Equal(t, Tail("a\nb\nc", 2), "b\nc")
	assert.Equal(t, Tail("a\nb\nc", 10), "a\nb\nc")
	assert.Equal(t, Tail("single", 3), "single")
	assert.Equal(t, Tail("", 2), "")
}

func TestTailNoSpuriousBlankLine(t *testing.T) {
	// The final line break must not count as an extra empty line.
	assert.Equal(t, Tail("a\nb\n", 1), "b\n")
}

func TestRange(t *testing.T) {
	content := "one\ntwo\nthree\nfour\n"

	got, err := Range(content, 2, 3)
	assert.NilError(t, err)
	assert.Equal(t, got, "two\nthree\n")

	got, err = Range(content, 1, 4)
	assert.NilError(t, err)
	assert.Equal(t, got, content)

	got, err = Range(content, 4, 10)
	assert.NilError(t, err)
	assert.Equal(t, got, "four\n")
}

func TestRangeWithoutTrailingBreak(t *testing.T) {
	got, err := Range("one\ntwo\nthree", 2, 3)
	assert.NilError(t, err)
	assert.Equal(t, got, "two\nthree")

	got, err = Range("one\ntwo\nthree", 1, 2)
	assert.NilError(t, err)
	assert.Equal(t, got, "one\ntwo\n")
}

func TestRangeErrors(t *testing.T) {
	_, err := Range("a\nb\n", 0, 1)
	assert.ErrorContains(t, err, "below 1")

	_, err = Range("a\nb\n", 3, 4)
	assert.ErrorContains(t, err, "past end")

	_, err = Range("a\nb\n", 2, 1)
	assert.ErrorContains(t, err, "before start")

	_, err = Range("", 1, 1)
	assert.ErrorContains(t, err, "past end")
}
