package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"main.go", 7},
		{"日本語", 6},
		{"café", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayWidth(tt.text), tt.text)
	}
}

func TestTruncateRight(t *testing.T) {
	assert.Equal(t, "short", TruncateRight("short", 10))
	assert.Equal(t, "very-l…", TruncateRight("very-long-name.txt", 7))
	assert.Equal(t, 7, DisplayWidth(TruncateRight("日本語のファイル", 7)))
	assert.Empty(t, TruncateRight("x", 0))
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "/tmp", TruncateLeft("/tmp", 10))
	assert.Equal(t, "…/project", TruncateLeft("/home/user/project", 9))
	assert.Equal(t, "…", TruncateLeft("/home/user/project", 1))
	assert.Empty(t, TruncateLeft("/home", 0))
}
