package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/wikifmt"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const glossaryYAML = `
extra_effects: [Burn, Freeze]
text_joins:
  1: and
`

func TestParseArgument(t *testing.T) {
	tests := map[string]struct {
		input string
		want  wikifmt.Value
	}{
		"signed":       {input: "-3", want: wikifmt.Signed(-3)},
		"unsigned":     {input: "18446744073709551615", want: wikifmt.Unsigned(18446744073709551615)},
		"float":        {input: "0.5", want: wikifmt.Floating(0.5)},
		"exponent":     {input: "1e3", want: wikifmt.Floating(1000)},
		"infinity":     {input: "inf", want: wikifmt.Text("inf")},
		"nan":          {input: "NaN", want: wikifmt.Text("NaN")},
		"text":         {input: "enemies", want: wikifmt.Text("enemies")},
		"grouped text": {input: "1,000", want: wikifmt.Text("1,000")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseArgument(tt.input))
		})
	}
}

func TestFormatCommand(t *testing.T) {
	t.Run("numbers and text", func(t *testing.T) {
		out, err := execute(t, "", "format", "Deals #1[i]% damage to #2", "12", "enemies")
		require.NoError(t, err)
		assert.Equal(t, "Deals 1,200% damage to enemies\n", out)
	})

	t.Run("text flag", func(t *testing.T) {
		out, err := execute(t, "", "format", "--text", "#1[i]", "12")
		require.NoError(t, err)
		assert.Equal(t, "12[i]\n", out)
	})

	t.Run("markup untouched", func(t *testing.T) {
		out, err := execute(t, "", "format", "<b>#1[f1]%</b>", "0.255")
		require.NoError(t, err)
		assert.Equal(t, "<b>25.5%</b>\n", out)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := execute(t, "", "format", "#2", "x")
		require.ErrorIs(t, err, wikifmt.ErrPlaceholderIndexOutOfRange)
	})

	t.Run("missing template", func(t *testing.T) {
		_, err := execute(t, "", "format")
		require.Error(t, err)
	})
}

func TestWikiCommand(t *testing.T) {
	glossary := writeTemp(t, "glossary.yaml", glossaryYAML)

	tests := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"known term": {
			args: []string{"wiki", "--glossary", glossary, "Inflicts <u>Burn</u> <join=1> <b>more</b>"},
			want: "Inflicts {{Tooltip|Burn}} and '''more'''\n",
		},
		"no glossary": {
			args: []string{"wiki", "<u>Burn</u>"},
			want: "''Burn''\n",
		},
		"stdin": {
			stdin: "<i>x</i>",
			args:  []string{"wiki", "-"},
			want:  "''x''\n",
		},
		"stripped": {
			args: []string{"wiki", "--media-wiki-syntax=false", "--newline-after-block=false", "<b>x</b> < y"},
			want: "x < y\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("placeholder fails", func(t *testing.T) {
		_, err := execute(t, "", "wiki", "Gain #1")
		require.ErrorIs(t, err, wikifmt.ErrPlaceholderIndexOutOfRange)
	})
}

const batchYAML = `
- key: skill.slash
  template: "Deals #1[i]% damage"
  args: [12]
- key: effect.burn
  template: "Applies <u>Burn</u>"
  wiki: true
`

func TestRenderCommand(t *testing.T) {
	glossary := writeTemp(t, "glossary.yaml", glossaryYAML)
	batch := writeTemp(t, "batch.yaml", batchYAML)

	t.Run("csv", func(t *testing.T) {
		out, err := execute(t, "", "render", "--glossary", glossary, "-o", "csv", batch)
		require.NoError(t, err)
		assert.Equal(t, "Key,Text\nskill.slash,\"Deals 1,200% damage\"\neffect.burn,Applies {{Tooltip|Burn}}\n", out)
	})

	t.Run("go template from stdin", func(t *testing.T) {
		out, err := execute(t, batchYAML, "render", "-o", "go-template={{.Key}}", "-")
		require.NoError(t, err)
		assert.Equal(t, "skill.slash\neffect.burn\n", out)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := execute(t, "", "render", "-o", "xml", batch)
		require.ErrorIs(t, err, wikifmt.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "", "render", filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	broken := writeTemp(t, "broken.yaml", `
- key: a
  template: "one"
- key: b
  template: "#3"
- key: c
  template: "three"
`)

	t.Run("failure writes nothing", func(t *testing.T) {
		for _, format := range []string{"plain", "json", "csv", "wikitable"} {
			out, err := execute(t, "", "render", "-o", format, broken)
			require.ErrorIs(t, err, wikifmt.ErrPlaceholderIndexOutOfRange, format)
			assert.Empty(t, out, format)
		}
	})

	t.Run("keep going", func(t *testing.T) {
		out, err := execute(t, "", "render", "--keep-going", broken)
		require.ErrorIs(t, err, errRequestsFailed)
		assert.Equal(t, "one\nthree\n", out)
	})
}

func TestConfigFileFlag(t *testing.T) {
	cfg := writeTemp(t, "wikifmt.toml", "[output]\nformat = \"jsonl\"\n")
	batch := writeTemp(t, "batch.yaml", "- key: k\n  template: hi\n")

	out, err := execute(t, "", "render", "--config", cfg, batch)
	require.NoError(t, err)
	assert.Equal(t, `{"key":"k","text":"hi"}`+"\n", out)

	_, err = execute(t, "", "render", "--config", filepath.Join(t.TempDir(), "missing.toml"), batch)
	require.Error(t, err)
}

func TestTagsCommand(t *testing.T) {
	out, err := execute(t, "", "tags")
	require.NoError(t, err)
	assert.Contains(t, out, "tags:")
	assert.Contains(t, out, "name: quote")
	assert.Contains(t, out, "kind: block")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wikifmt version dev")
	assert.Contains(t, out, "commit: unknown")
}
