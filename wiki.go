package wikifmt

import (
	"strconv"
	"strings"
)

// node is one piece of parsed rich text: a text run (tag == nil) or a
// tagged element with children.
type node struct {
	tag      *Tag
	attr     string
	text     string
	raw      string
	children []*node
}

// rawTag is the lexical form of "<name=attr>", "</name>" or "<name/>".
type rawTag struct {
	name        string
	attr        string
	closing     bool
	selfClosing bool
}

// scanTag reads a tag at the start of s, which begins with '<'.
func scanTag(s string) (rawTag, int, bool) {
	end := strings.IndexAny(s[1:], "<>")
	if end < 0 || s[1+end] != '>' {
		return rawTag{}, 0, false
	}
	body := s[1 : 1+end]
	size := end + 2

	var t rawTag
	if rest, ok := strings.CutPrefix(body, "/"); ok {
		t.closing = true
		body = rest
	}
	if rest, ok := strings.CutSuffix(body, "/"); ok && !t.closing {
		t.selfClosing = true
		body = rest
	}
	name, attr, hasAttr := strings.Cut(body, "=")
	if name == "" || strings.ContainsAny(name, " \t\r\n/") {
		return rawTag{}, 0, false
	}
	if hasAttr {
		if t.closing {
			return rawTag{}, 0, false
		}
		t.attr = strings.Trim(strings.TrimSpace(attr), `"'`)
	}
	t.name = name
	return t, size, true
}

// knownTagSize returns the length of the vocab tag at the start of s, or 0
// when s does not start with one.
func knownTagSize(s string, vocab *Vocabulary) int {
	if vocab == nil {
		return 0
	}
	t, size, ok := scanTag(s)
	if !ok {
		return 0
	}
	if _, known := vocab.Lookup(t.name); !known {
		return 0
	}
	return size
}

// parseMarkup builds a tree of the tags known to vocab. Unknown tags, close
// tags without an open tag, and open tags never closed stay literal text.
func parseMarkup(s string, vocab *Vocabulary) *node {
	root := &node{}
	stack := []*node{root}
	top := func() *node { return stack[len(stack)-1] }
	addText := func(text string) {
		if text == "" {
			return
		}
		parent := top()
		if n := len(parent.children); n > 0 && parent.children[n-1].tag == nil {
			parent.children[n-1].text += text
			return
		}
		parent.children = append(parent.children, &node{text: text})
	}
	// unwind drops the innermost open element, splicing its raw open tag
	// and children into its parent.
	unwind := func() {
		open := top()
		stack = stack[:len(stack)-1]
		parent := top()
		parent.children = parent.children[:len(parent.children)-1]
		addText(open.raw)
		for _, child := range open.children {
			if child.tag == nil {
				addText(child.text)
				continue
			}
			parent.children = append(parent.children, child)
		}
	}

	literal := 0
	for i := 0; i < len(s); {
		if s[i] != '<' {
			i++
			continue
		}
		t, size, ok := scanTag(s[i:])
		if !ok {
			i++
			continue
		}
		tag, known := vocab.Lookup(t.name)
		if !known {
			i += size
			continue
		}
		addText(s[literal:i])
		raw := s[i : i+size]
		i += size
		literal = i

		switch {
		case tag.Decoration == DecorationJoin:
			if t.closing {
				addText(raw)
				continue
			}
			top().children = append(top().children, &node{tag: &tag, attr: t.attr, raw: raw})
		case t.closing:
			depth := -1
			for j := len(stack) - 1; j > 0; j-- {
				if strings.EqualFold(stack[j].tag.Name, tag.Name) {
					depth = j
					break
				}
			}
			if depth < 0 {
				addText(raw)
				continue
			}
			for len(stack)-1 > depth {
				unwind()
			}
			stack = stack[:depth]
		case t.selfClosing:
			addText(raw)
		default:
			el := &node{tag: &tag, attr: t.attr, raw: raw}
			top().children = append(top().children, el)
			stack = append(stack, el)
		}
	}
	addText(s[literal:])
	for len(stack) > 1 {
		unwind()
	}
	return root
}

// wikiEscaper neutralizes text that the wiki would read as markup.
var wikiEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	"''", "&#39;&#39;",
	"[[", "&#91;&#91;",
	"]]", "&#93;&#93;",
	"{{", "&#123;&#123;",
	"}}", "&#125;&#125;",
)

// templateArgEscaper additionally protects the template argument separator.
var templateArgEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	"[", "&#91;",
	"]", "&#93;",
	"{", "&#123;",
	"}", "&#125;",
	"|", "&#124;",
	"=", "&#61;",
	"'", "&#39;",
)

func (d *decorator) write(s string) {
	if s == "" {
		return
	}
	d.absorb = false
	d.buf.WriteString(s)
}

func (d *decorator) text(s string) {
	if d.absorb {
		s = strings.TrimLeft(s, "\r\n")
	}
	if d.cfg.MediaWikiSyntax {
		s = wikiEscaper.Replace(s)
	}
	d.write(s)
}

func (d *decorator) render(nodes []*node) {
	for _, n := range nodes {
		if n.tag == nil {
			d.text(n.text)
			continue
		}
		d.element(n)
	}
}

func (d *decorator) element(n *node) {
	wiki := d.cfg.MediaWikiSyntax
	switch n.tag.Decoration {
	case DecorationInline:
		d.wrap(wiki, n.tag.Open, n.tag.Close, n.children)
	case DecorationColor:
		c, err := ParseColor(n.attr)
		open := strings.Replace(n.tag.Open, valueVerb, c.String(), 1)
		d.wrap(wiki && err == nil, open, n.tag.Close, n.children)
	case DecorationTerm:
		d.term(n)
	case DecorationBlock:
		d.wrap(wiki, n.tag.Open, n.tag.Close, n.children)
		if d.cfg.NewlineAfterBlock {
			d.trimTrailingNewlines()
			d.write("\n\n")
			d.absorb = true
		}
	case DecorationJoin:
		id, err := strconv.ParseUint(n.attr, 10, 8)
		if err != nil {
			d.text(n.raw)
			return
		}
		d.text(d.data.DefaultTextJoinItem(uint8(id)))
	}
}

func (d *decorator) wrap(decorate bool, open, close string, children []*node) {
	if !decorate {
		d.render(children)
		return
	}
	d.write(open)
	d.render(children)
	d.write(close)
}

// term links a glossary term. The name is the plain text of the element;
// unknown names keep their content and get the tag's emphasis markup.
func (d *decorator) term(n *node) {
	name := strings.TrimSpace(d.plainText(n.children))
	if name == "" || !d.data.HasExtraEffectConfig(name) {
		d.wrap(d.cfg.MediaWikiSyntax, n.tag.Open, n.tag.Close, n.children)
		return
	}
	if !d.cfg.MediaWikiSyntax {
		d.render(n.children)
		return
	}
	if linker, ok := d.data.(TermLinker); ok {
		d.write(linker.TermLink(name))
		return
	}
	d.write(strings.Replace(n.tag.Link, valueVerb, templateArgEscaper.Replace(name), 1))
}

func (d *decorator) plainText(nodes []*node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch {
		case n.tag == nil:
			b.WriteString(n.text)
		case n.tag.Decoration == DecorationJoin:
			if id, err := strconv.ParseUint(n.attr, 10, 8); err == nil {
				b.WriteString(d.data.DefaultTextJoinItem(uint8(id)))
			} else {
				b.WriteString(n.raw)
			}
		default:
			b.WriteString(d.plainText(n.children))
		}
	}
	return b.String()
}

func (d *decorator) trimTrailingNewlines() {
	out := d.buf.Bytes()
	n := len(out)
	for n > 0 && (out[n-1] == '\n' || out[n-1] == '\r') {
		n--
	}
	d.buf.Truncate(n)
}
