package wrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "short", 10, []string{"short"}},
		{"greedy", "hello world foo", 11, []string{"hello world", "foo"}},
		{"exact boundary", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"long word is split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word after short", "go abcdefgh", 4, []string{"go", "abcd", "efgh"}},
		{"hyphen break", "well-known fact", 6, []string{"well-", "known", "fact"}},
		{"trailing space dropped", "one two ", 3, []string{"one", "two"}},
		{"mandatory break", "first\nsecond", 20, []string{"first", "second"}},
		{"wide clusters", "日本語の文章", 4, []string{"日本", "語の", "文章"}},
		{"zero width treated as one", "ab", 0, []string{"a", "b"}},
		{"combining marks stay whole", "e\u0301e\u0301e\u0301", 2, []string{"e\u0301e\u0301", "e\u0301"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.text, tt.width))
		})
	}
}
