package wikifmt

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrPlaceholderIndexOutOfRange = errors.New("placeholder index out of range")
	ErrInvalidArgument            = errors.New("invalid argument")
	ErrInvalidVocabulary          = errors.New("invalid vocabulary")
	ErrInvalidColor               = errors.New("invalid color")
	ErrUnsupportedFormat          = errors.New("unsupported format")
	ErrInvalidTemplate            = errors.New("invalid template")
)

// PlaceholderIndexOutOfRangeError reports a well-formed placeholder whose
// index falls outside 1..ArgumentCount. It matches
// [ErrPlaceholderIndexOutOfRange] with errors.Is.
type PlaceholderIndexOutOfRangeError struct {
	Index         int
	ArgumentCount int
	// Offset is the byte offset of the '#' in the template.
	Offset int
}

func (e *PlaceholderIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: #%d at offset %d, %d argument(s) supplied",
		ErrPlaceholderIndexOutOfRange, e.Index, e.Offset, e.ArgumentCount)
}

// Is reports whether target is [ErrPlaceholderIndexOutOfRange].
func (e *PlaceholderIndexOutOfRangeError) Is(target error) bool {
	return target == ErrPlaceholderIndexOutOfRange
}

// Config holds the output switches of a [Formatter]. It is copied at
// construction and never changes afterwards.
type Config struct {
	// MediaWikiSyntax rewrites rich-text tags into wiki markup in
	// FormatWiki. When false the tags are stripped and only their text is
	// kept.
	MediaWikiSyntax bool
	// NewlineAfterBlock follows every block-level element with exactly one
	// blank line.
	NewlineAfterBlock bool
	// Vocabulary is the tag set recognized by FormatWiki. Nil selects
	// DefaultVocabulary.
	Vocabulary *Vocabulary
}

// Formatter renders templates. A Formatter holds no mutable state and may
// be used from multiple goroutines at once.
type Formatter struct {
	data  GameData
	cfg   Config
	vocab *Vocabulary
}

// New returns a Formatter that resolves glossary terms and text joins
// through data. A nil data behaves as an empty [Glossary].
func New(data GameData, cfg Config) *Formatter {
	if data == nil {
		data = NewGlossary(nil, nil)
	}
	vocab := cfg.Vocabulary
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	cfg.Vocabulary = vocab
	return &Formatter{data: data, cfg: cfg, vocab: vocab}
}

// Wiki returns the Formatter used to produce wiki pages: MediaWiki syntax
// with a blank line after each block.
func Wiki(data GameData) *Formatter {
	return New(data, Config{MediaWikiSyntax: true, NewlineAfterBlock: true})
}

var plain = New(nil, Config{})

// FormatPlain renders template in plain mode with a default Formatter.
func FormatPlain(template string, args ...Value) (string, error) {
	return plain.Format(template, args...)
}

// Config returns the configuration the Formatter was built with.
func (f *Formatter) Config() Config { return f.cfg }

// Format substitutes the placeholders of template with args, indexed from
// 1. Everything that is not a placeholder is copied unchanged.
func (f *Formatter) Format(template string, args ...Value) (string, error) {
	var b strings.Builder
	b.Grow(len(template))
	if err := substitute(&b, template, args, nil); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatWiki renders static text (no arguments) for the wiki. Rich-text
// tags known to the vocabulary are rewritten or stripped depending on
// MediaWikiSyntax, glossary terms become links, and text joins resolve to
// their default phrasing.
func (f *Formatter) FormatWiki(template string) (string, error) {
	var b strings.Builder
	b.Grow(len(template))
	if err := substitute(&b, template, nil, f.vocab); err != nil {
		return "", err
	}
	tree := parseMarkup(b.String(), f.vocab)
	d := &decorator{cfg: f.cfg, data: f.data}
	d.buf.Grow(b.Len())
	d.render(tree.children)
	return d.String(), nil
}

// decorator writes a parsed markup tree. absorb is set after a block so the
// newlines that follow it in the source collapse into the single blank line
// the block already emitted.
type decorator struct {
	buf    bytes.Buffer
	cfg    Config
	data   GameData
	absorb bool
}

func (d *decorator) String() string { return d.buf.String() }
