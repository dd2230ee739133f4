package parens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		text string
		want Result
	}{
		{"", Result{Balanced: true, Depth: 0, FailedAt: -1}},
		{"no parens", Result{Balanced: true, Depth: 0, FailedAt: -1}},
		{"()", Result{Balanced: true, Depth: 0, FailedAt: -1}},
		{"(a(b)c)", Result{Balanced: true, Depth: 0, FailedAt: -1}},
		{"(()())", Result{Balanced: true, Depth: 0, FailedAt: -1}},
		{"abc(def)ghi", Result{Balanced: true, Depth: 0, FailedAt: -1}},
		{"(()", Result{Balanced: false, Depth: 1, FailedAt: -1}},
		{")(", Result{Balanced: false, Depth: -1, FailedAt: 0}},
		{"())(", Result{Balanced: false, Depth: -1, FailedAt: 2}},
		{"[{<>}]", Result{Balanced: true, Depth: 0, FailedAt: -1}},
		{"ä)", Result{Balanced: false, Depth: -1, FailedAt: 1}},
		{"((((", Result{Balanced: false, Depth: 4, FailedAt: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Validate(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Balanced, IsBalanced(tt.text))
		})
	}
}

func TestIsBalanced_Deep(t *testing.T) {
	const depth = 10000
	text := strings.Repeat("(", depth) + strings.Repeat(")", depth)
	assert.True(t, IsBalanced(text))
	assert.False(t, IsBalanced(text+")"))
	assert.Equal(t, 2*depth, Validate(text+")").FailedAt)
}
