package template

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blocks(t *Template) []Block {
	var out []Block
	for i := 0; i < t.BlockCount(); i++ {
		out = append(out, t.BlockAt(i))
	}
	return out
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		targets    []string
		wantBlocks []Block
		wantSuffix string
	}{
		{
			name:       "single target",
			text:       "Hello {name}!",
			targets:    []string{"{name}"},
			wantBlocks: []Block{{Text: "Hello ", Target: 0}},
			wantSuffix: "!",
		},
		{
			name:    "two targets in order",
			text:    "{greeting}, {name}!",
			targets: []string{"{greeting}", "{name}"},
			wantBlocks: []Block{
				{Text: "", Target: 0},
				{Text: ", ", Target: 1},
			},
			wantSuffix: "!",
		},
		{
			name:    "target order in list does not matter",
			text:    "{greeting}, {name}!",
			targets: []string{"{name}", "{greeting}"},
			wantBlocks: []Block{
				{Text: "", Target: 1},
				{Text: ", ", Target: 0},
			},
			wantSuffix: "!",
		},
		{
			name:    "repeated target",
			text:    "{A}-{A}",
			targets: []string{"{A}"},
			wantBlocks: []Block{
				{Text: "", Target: 0},
				{Text: "-", Target: 0},
			},
			wantSuffix: "",
		},
		{
			name:       "absent target produces no blocks",
			text:       "nothing to see",
			targets:    []string{"{missing}"},
			wantBlocks: nil,
			wantSuffix: "nothing to see",
		},
		{
			name:       "no targets at all",
			text:       "just static text",
			targets:    nil,
			wantBlocks: nil,
			wantSuffix: "just static text",
		},
		{
			name:       "template ends with a target",
			text:       "value: {v}",
			targets:    []string{"{v}"},
			wantBlocks: []Block{{Text: "value: ", Target: 0}},
			wantSuffix: "",
		},
		{
			name:       "empty template",
			text:       "",
			targets:    []string{"{v}"},
			wantBlocks: nil,
			wantSuffix: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := Compile(tt.text, tt.targets)
			assert.Equal(t, tt.wantBlocks, blocks(tmpl))
			assert.Equal(t, tt.wantSuffix, tmpl.Suffix())
			assert.Equal(t, tt.text, tmpl.String(), "blocks plus suffix must reassemble the source")
		})
	}
}

func TestCompileForemostLongest(t *testing.T) {
	t.Run("longest wins at the same start", func(t *testing.T) {
		tmpl := Compile("this bundler is good at tree-shaking", []string{"tree", "tree-shaking"})
		require.Equal(t, 1, tmpl.BlockCount())
		assert.Equal(t, Block{Text: "this bundler is good at ", Target: 1}, tmpl.BlockAt(0))
		assert.Equal(t, "", tmpl.Suffix())
	})

	t.Run("foremost wins across different starts", func(t *testing.T) {
		// "tree" inside "falling-tree" starts later, so "falling-tree"
		// claims the span even though "tree" sorts below it elsewhere.
		tmpl := Compile("falling-tree tree-shaking", []string{"tree", "tree-shaking", "falling-tree"})
		require.Equal(t, 2, tmpl.BlockCount())
		assert.Equal(t, Block{Text: "", Target: 2}, tmpl.BlockAt(0))
		assert.Equal(t, Block{Text: " ", Target: 1}, tmpl.BlockAt(1))
		assert.Equal(t, "", tmpl.Suffix())
	})

	t.Run("later occurrence survives once clear of the winner", func(t *testing.T) {
		tmpl := Compile("tree-shaking trims a tree", []string{"tree", "tree-shaking"})
		require.Equal(t, 2, tmpl.BlockCount())
		assert.Equal(t, Block{Text: "", Target: 1}, tmpl.BlockAt(0))
		assert.Equal(t, Block{Text: " trims a ", Target: 0}, tmpl.BlockAt(1))
		assert.Equal(t, "", tmpl.Suffix())
	})
}

func TestCompileIdempotent(t *testing.T) {
	text := "falling-tree tree-shaking tree"
	targets := []string{"tree", "tree-shaking", "falling-tree"}

	a := Compile(text, targets)
	b := Compile(text, targets)
	assert.True(t, reflect.DeepEqual(a, b), "compiling twice must yield structurally identical templates")
}

func TestCompileAccessors(t *testing.T) {
	tmpl := Compile("a {x} b", []string{"{x}", "{y}"})

	assert.Equal(t, 2, tmpl.TargetCount())
	assert.Equal(t, "{x}", tmpl.TargetAt(0))
	assert.Equal(t, "{y}", tmpl.TargetAt(1))
	assert.True(t, tmpl.Occurs(0))
	assert.False(t, tmpl.Occurs(1))

	targets := tmpl.Targets()
	targets[0] = "mutated"
	assert.Equal(t, "{x}", tmpl.TargetAt(0), "Targets must return a copy")
}
