package wikifmt

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decoration is what a rich-text tag does to its content in wiki mode.
type Decoration int

const (
	// DecorationInline wraps the content in Open and Close.
	DecorationInline Decoration = iota
	// DecorationColor wraps the content in Open and Close when the tag
	// attribute is a valid color. Open receives the color through "%s".
	DecorationColor
	// DecorationTerm links the content when it names a known glossary term
	// and otherwise wraps it in Open and Close.
	DecorationTerm
	// DecorationBlock wraps the content in Open and Close and may be
	// followed by a blank line.
	DecorationBlock
	// DecorationJoin is an empty tag whose attribute selects a text join.
	DecorationJoin
)

var decorationNames = map[Decoration]string{
	DecorationInline: "inline",
	DecorationColor:  "color",
	DecorationTerm:   "term",
	DecorationBlock:  "block",
	DecorationJoin:   "join",
}

// String returns the decoration name used in vocabulary files.
func (d Decoration) String() string {
	if s, ok := decorationNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Decoration(%d)", int(d))
}

// ParseDecoration parses a decoration name.
func ParseDecoration(s string) (Decoration, error) {
	for d, name := range decorationNames {
		if strings.EqualFold(name, s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown decoration %q", ErrInvalidVocabulary, s)
}

// MarshalYAML encodes the decoration by name.
func (d Decoration) MarshalYAML() (any, error) { return d.String(), nil }

// UnmarshalYAML decodes a decoration name.
func (d *Decoration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDecoration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = parsed
	return nil
}

// valueVerb marks where a color or term name is substituted into markup.
const valueVerb = "%s"

// Tag maps one rich-text tag to its wiki markup.
type Tag struct {
	Name       string     `yaml:"name"`
	Decoration Decoration `yaml:"kind"`
	Open       string     `yaml:"open,omitempty"`
	Close      string     `yaml:"close,omitempty"`
	// Link is the markup for a known glossary term; "%s" receives the
	// term name. Only used by DecorationTerm.
	Link string `yaml:"link,omitempty"`
}

func (t Tag) validate() error {
	if t.Name == "" {
		return errors.New("tag name is empty")
	}
	if strings.ContainsAny(t.Name, "<>=/ \t\n") {
		return fmt.Errorf("tag %q: name contains markup characters", t.Name)
	}
	if _, ok := decorationNames[t.Decoration]; !ok {
		return fmt.Errorf("tag %q: unknown decoration %d", t.Name, int(t.Decoration))
	}
	if t.Decoration == DecorationColor && strings.Count(t.Open, valueVerb) != 1 {
		return fmt.Errorf("tag %q: color markup needs exactly one %s", t.Name, valueVerb)
	}
	if t.Decoration == DecorationTerm && strings.Count(t.Link, valueVerb) != 1 {
		return fmt.Errorf("tag %q: term link needs exactly one %s", t.Name, valueVerb)
	}
	return nil
}

// Vocabulary is an immutable set of tags keyed by lower-cased name.
type Vocabulary struct {
	tags map[string]Tag
}

// NewVocabulary builds a vocabulary from tags. Names are matched without
// regard to case and must be unique.
func NewVocabulary(tags ...Tag) (*Vocabulary, error) {
	v := &Vocabulary{tags: make(map[string]Tag, len(tags))}
	for _, t := range tags {
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidVocabulary, err)
		}
		key := strings.ToLower(t.Name)
		if _, dup := v.tags[key]; dup {
			return nil, fmt.Errorf("%w: duplicate tag %q", ErrInvalidVocabulary, t.Name)
		}
		v.tags[key] = t
	}
	return v, nil
}

var defaultTags = []Tag{
	{Name: "b", Decoration: DecorationInline, Open: "'''", Close: "'''"},
	{Name: "i", Decoration: DecorationInline, Open: "''", Close: "''"},
	{Name: "color", Decoration: DecorationColor, Open: `<span style="color:%s">`, Close: "</span>"},
	{Name: "u", Decoration: DecorationTerm, Open: "''", Close: "''", Link: "{{Tooltip|%s}}"},
	{Name: "quote", Decoration: DecorationBlock, Open: "<blockquote>", Close: "</blockquote>"},
	{Name: "join", Decoration: DecorationJoin},
}

// DefaultVocabulary returns the tag set used by the game's localization
// text: b, i, color, u (glossary term), quote (block) and join.
func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(defaultTags...)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup returns the tag registered under name.
func (v *Vocabulary) Lookup(name string) (Tag, bool) {
	t, ok := v.tags[strings.ToLower(name)]
	return t, ok
}

// Tags returns the registered tags sorted by name.
func (v *Vocabulary) Tags() []Tag {
	out := make([]Tag, 0, len(v.tags))
	for _, t := range v.tags {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Tag) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// With returns a copy of v with tags added or replaced.
func (v *Vocabulary) With(tags ...Tag) (*Vocabulary, error) {
	merged := make([]Tag, 0, len(v.tags)+len(tags))
	for _, t := range v.Tags() {
		if !slices.ContainsFunc(tags, func(o Tag) bool { return strings.EqualFold(o.Name, t.Name) }) {
			merged = append(merged, t)
		}
	}
	return NewVocabulary(append(merged, tags...)...)
}

type vocabularyFile struct {
	// Extend keeps the default tags and layers the file's tags over them.
	Extend bool  `yaml:"extend"`
	Tags   []Tag `yaml:"tags"`
}

// LoadVocabulary reads a YAML vocabulary:
//
//	extend: true
//	tags:
//	  - name: s
//	    kind: inline
//	    open: "<s>"
//	    close: "</s>"
func LoadVocabulary(r io.Reader) (*Vocabulary, error) {
	var f vocabularyFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidVocabulary, err)
	}
	if f.Extend {
		return DefaultVocabulary().With(f.Tags...)
	}
	return NewVocabulary(f.Tags...)
}
