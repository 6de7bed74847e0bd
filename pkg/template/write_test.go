package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		targets  []string
		values   []string
		expected string
	}{
		{
			name:     "exact arity",
			text:     "Hello {name}!",
			targets:  []string{"{name}"},
			values:   []string{"World"},
			expected: "Hello World!",
		},
		{
			name:     "fewer values fill with empty strings",
			text:     "{a}-{b}-{c}",
			targets:  []string{"{a}", "{b}", "{c}"},
			values:   []string{"1"},
			expected: "1--",
		},
		{
			name:     "extra values are ignored",
			text:     "Hello {name}!",
			targets:  []string{"{name}"},
			values:   []string{"World", "ignored", "also ignored"},
			expected: "Hello World!",
		},
		{
			name:     "no values at all",
			text:     "Hello {name}!",
			targets:  []string{"{name}"},
			values:   nil,
			expected: "Hello !",
		},
		{
			name:     "repeated target writes the same value twice",
			text:     "{A}-{A}",
			targets:  []string{"{A}"},
			values:   []string{"x"},
			expected: "x-x",
		},
		{
			name:     "target absent from template ignores its value",
			text:     "static only",
			targets:  []string{"{missing}"},
			values:   []string{"unused"},
			expected: "static only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := Compile(tt.text, tt.targets)
			assert.Equal(t, tt.expected, tmpl.Write(tt.values...))
		})
	}
}
