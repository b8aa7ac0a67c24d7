package wikifmt

import (
	"strconv"
	"strings"
)

type renderMode int

const (
	modeRaw renderMode = iota
	modeInteger
	modeFloat
)

// placeholder is a parsed "#N[modifier]%" reference.
type placeholder struct {
	index     int
	mode      renderMode
	precision int
	percent   bool
}

func (p placeholder) render(v Value) string {
	switch p.mode {
	case modeInteger:
		return v.RenderAsInteger(p.percent)
	case modeFloat:
		return v.RenderAsFloat(p.precision, p.percent)
	default:
		return v.RenderRaw(p.percent)
	}
}

// substitute scans template once. Outside a placeholder bytes are copied
// through; a '#' starts a placeholder attempt, and a failed attempt leaves
// the '#' as literal text and resumes at the next byte. With a non-nil
// vocab, tags it knows are copied whole so their attributes are never read
// as placeholders.
func substitute(b *strings.Builder, template string, args []Value, vocab *Vocabulary) error {
	literal := 0
	for i := 0; i < len(template); {
		switch template[i] {
		case '<':
			if n := knownTagSize(template[i:], vocab); n > 0 {
				i += n
				continue
			}
		case '#':
			ph, n, ok := parsePlaceholder(template[i:])
			if !ok {
				break
			}
			if ph.index < 1 || ph.index > len(args) {
				return &PlaceholderIndexOutOfRangeError{
					Index:         ph.index,
					ArgumentCount: len(args),
					Offset:        i,
				}
			}
			b.WriteString(template[literal:i])
			b.WriteString(ph.render(args[ph.index-1]))
			i += n
			literal = i
			continue
		}
		i++
	}
	b.WriteString(template[literal:])
	return nil
}

// parsePlaceholder reads a placeholder at the start of s, which begins with
// '#'. It returns the number of bytes consumed. A modifier that does not
// parse is left unconsumed; the index alone still forms a placeholder.
func parsePlaceholder(s string) (placeholder, int, bool) {
	n := 1
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == 1 {
		return placeholder{}, 0, false
	}
	index, err := strconv.Atoi(s[1:n])
	if err != nil {
		return placeholder{}, 0, false
	}
	ph := placeholder{index: index}

	if m, size, ok := parseModifier(s[n:]); ok {
		ph.mode = m.mode
		ph.precision = m.precision
		n += size
	}
	if n < len(s) && s[n] == '%' {
		ph.percent = true
		n++
	}
	return ph, n, true
}

func parseModifier(s string) (placeholder, int, bool) {
	switch {
	case strings.HasPrefix(s, "[i]"):
		return placeholder{mode: modeInteger}, 3, true
	case strings.HasPrefix(s, "[f"):
		end := 2
		for end < len(s) && isDigit(s[end]) {
			end++
		}
		if end >= len(s) || s[end] != ']' {
			return placeholder{}, 0, false
		}
		precision := 0
		if digits := s[2:end]; digits != "" {
			p, err := strconv.Atoi(digits)
			if err != nil {
				return placeholder{}, 0, false
			}
			precision = p
		}
		return placeholder{mode: modeFloat, precision: precision}, end + 1, true
	default:
		return placeholder{}, 0, false
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
