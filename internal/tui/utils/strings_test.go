package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "hello", TruncateString("hello", 10))
	assert.Equal(t, "hell…", TruncateString("hello world", 5))
	assert.Equal(t, "", TruncateString("hello", 0))
	assert.Equal(t, "h", TruncateString("hello", 1))
}

func TestTruncateStringWideRunes(t *testing.T) {
	// Thai and CJK content must truncate on display width, not bytes.
	assert.Equal(t, "ทองหล่อ", TruncateString("ทองหล่อ", 10))
	got := TruncateString("沿海一条路", 6)
	assert.LessOrEqual(t, len([]rune(got)), 4)
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "abc…", PadRight("abcdef", 4))
}
