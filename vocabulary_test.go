package wikifmt_test

import (
	"strings"
	"testing"

	"github.com/bjaus/wikifmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func tagNames(v *wikifmt.Vocabulary) []string {
	var names []string
	for _, t := range v.Tags() {
		names = append(names, t.Name)
	}
	return names
}

func TestDefaultVocabulary(t *testing.T) {
	t.Parallel()
	v := wikifmt.DefaultVocabulary()
	assert.Equal(t, []string{"b", "color", "i", "join", "quote", "u"}, tagNames(v))

	tag, ok := v.Lookup("QUOTE")
	require.True(t, ok)
	assert.Equal(t, wikifmt.DecorationBlock, tag.Decoration)

	_, ok = v.Lookup("sprite")
	assert.False(t, ok)
}

func TestNewVocabularyRejects(t *testing.T) {
	t.Parallel()
	tests := map[string][]wikifmt.Tag{
		"empty name":        {{Decoration: wikifmt.DecorationInline}},
		"markup in name":    {{Name: "a=b", Decoration: wikifmt.DecorationInline}},
		"duplicate":         {{Name: "b"}, {Name: "B"}},
		"unknown kind":      {{Name: "x", Decoration: wikifmt.Decoration(42)}},
		"color without %s":  {{Name: "c", Decoration: wikifmt.DecorationColor, Open: "<span>"}},
		"term without link": {{Name: "t", Decoration: wikifmt.DecorationTerm}},
	}
	for name, tags := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := wikifmt.NewVocabulary(tags...)
			require.ErrorIs(t, err, wikifmt.ErrInvalidVocabulary)
		})
	}
}

func TestVocabularyWithReplaces(t *testing.T) {
	t.Parallel()
	base := wikifmt.DefaultVocabulary()
	v, err := base.With(wikifmt.Tag{Name: "B", Decoration: wikifmt.DecorationInline, Open: "<b>", Close: "</b>"})
	require.NoError(t, err)
	tag, ok := v.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "<b>", tag.Open)
	assert.Len(t, v.Tags(), len(base.Tags()))

	// The base vocabulary is unchanged.
	orig, _ := base.Lookup("b")
	assert.Equal(t, "'''", orig.Open)
}

func TestLoadVocabulary(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in    string
		names []string
	}{
		"replace": {
			in: `
tags:
  - name: s
    kind: inline
    open: "<s>"
    close: "</s>"
  - name: tip
    kind: term
    open: "''"
    close: "''"
    link: "{{Tip|%s}}"
`,
			names: []string{"s", "tip"},
		},
		"extend": {
			in: `
extend: true
tags:
  - name: sup
    kind: inline
    open: "<sup>"
    close: "</sup>"
`,
			names: []string{"b", "color", "i", "join", "quote", "sup", "u"},
		},
		"empty": {in: "", names: nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v, err := wikifmt.LoadVocabulary(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.names, tagNames(v))
		})
	}
}

func TestLoadVocabularyErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown kind": "tags:\n  - name: x\n    kind: sparkle\n",
		"bad yaml":     "tags: [\n",
		"invalid tag":  "tags:\n  - name: c\n    kind: color\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := wikifmt.LoadVocabulary(strings.NewReader(in))
			require.ErrorIs(t, err, wikifmt.ErrInvalidVocabulary)
		})
	}
}

func TestDecorationNames(t *testing.T) {
	t.Parallel()
	for _, d := range []wikifmt.Decoration{
		wikifmt.DecorationInline, wikifmt.DecorationColor, wikifmt.DecorationTerm,
		wikifmt.DecorationBlock, wikifmt.DecorationJoin,
	} {
		parsed, err := wikifmt.ParseDecoration(strings.ToUpper(d.String()))
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
	assert.Equal(t, "Decoration(7)", wikifmt.Decoration(7).String())

	out, err := yaml.Marshal(wikifmt.Tag{Name: "b", Decoration: wikifmt.DecorationBlock})
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: block")
}
