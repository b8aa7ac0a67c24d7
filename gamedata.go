package wikifmt

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// GameData is the lookup surface FormatWiki needs from the extracted game
// data. Implementations must be safe for concurrent reads.
type GameData interface {
	// DefaultTextJoinItem returns the default phrasing of a text join.
	DefaultTextJoinItem(id uint8) string
	// HasExtraEffectConfig reports whether name is a glossary term.
	HasExtraEffectConfig(name string) bool
}

// TermLinker is an optional GameData interface. When implemented it
// produces the wiki markup for a known glossary term instead of the tag's
// Link markup.
type TermLinker interface {
	TermLink(name string) string
}

// Glossary is an in-memory GameData. It is immutable after construction.
type Glossary struct {
	effects map[string]struct{}
	joins   map[uint8]string
}

// NewGlossary returns a Glossary with the given glossary terms and default
// text join phrasings.
func NewGlossary(effects []string, joins map[uint8]string) *Glossary {
	g := &Glossary{
		effects: make(map[string]struct{}, len(effects)),
		joins:   maps.Clone(joins),
	}
	for _, name := range effects {
		g.effects[name] = struct{}{}
	}
	if g.joins == nil {
		g.joins = map[uint8]string{}
	}
	return g
}

// DefaultTextJoinItem returns the phrasing registered for id, or "" when
// the id is unknown.
func (g *Glossary) DefaultTextJoinItem(id uint8) string {
	return g.joins[id]
}

// HasExtraEffectConfig reports whether name is a registered term.
func (g *Glossary) HasExtraEffectConfig(name string) bool {
	_, ok := g.effects[name]
	return ok
}

// Effects returns the registered terms in sorted order.
func (g *Glossary) Effects() []string {
	return slices.Sorted(maps.Keys(g.effects))
}

type glossaryFile struct {
	ExtraEffects []string         `yaml:"extra_effects"`
	TextJoins    map[uint8]string `yaml:"text_joins"`
}

// LoadGlossary reads a YAML glossary:
//
//	extra_effects:
//	  - Burn
//	  - Freeze
//	text_joins:
//	  1: "and"
//	  2: "or"
func LoadGlossary(r io.Reader) (*Glossary, error) {
	var f glossaryFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode glossary: %w", err)
	}
	return NewGlossary(f.ExtraEffects, f.TextJoins), nil
}
