package wikifmt

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"gopkg.in/yaml.v3"
)

// Request is one template to render, as produced by the data layer.
type Request struct {
	Key      string    `yaml:"key"`
	Template string    `yaml:"template"`
	Args     Arguments `yaml:"args,omitempty"`
	// Wiki renders with FormatWiki. Wiki requests take no arguments.
	Wiki bool `yaml:"wiki,omitempty"`
}

// Entry is a rendered request.
type Entry struct {
	Key  string `json:"key" yaml:"key"`
	Text string `json:"text" yaml:"text"`
}

// String returns the rendered text.
func (e Entry) String() string { return e.Text }

// Arguments is an argument list decodable from a YAML sequence of scalars.
// Integers become Signed (Unsigned above the int64 range), floats become
// Floating, null becomes Unsigned(0), and everything else is Text.
type Arguments []Value

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Arguments) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: arguments must be a sequence", ErrInvalidArgument, node.Line)
	}
	out := make(Arguments, 0, len(node.Content))
	for _, item := range node.Content {
		v, err := decodeArgument(item)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*a = out
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Arguments) MarshalYAML() (any, error) {
	out := make([]any, len(a))
	for i, v := range a {
		switch x := v.(type) {
		case Text:
			out[i] = string(x)
		case Signed:
			out[i] = int64(x)
		case Unsigned:
			out[i] = uint64(x)
		case Floating:
			out[i] = float64(x)
		}
	}
	return out, nil
}

func decodeArgument(n *yaml.Node) (Value, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("%w: line %d: argument must be a scalar", ErrInvalidArgument, n.Line)
	}
	switch n.ShortTag() {
	case "!!null":
		return Unsigned(0), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Signed(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrInvalidArgument, n.Line, err)
		}
		return Unsigned(u), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrInvalidArgument, n.Line, err)
		}
		return Floating(f), nil
	default:
		return Text(n.Value), nil
	}
}

// LoadRequests reads a YAML sequence of requests.
func LoadRequests(r io.Reader) ([]Request, error) {
	var reqs []Request
	if err := yaml.NewDecoder(r).Decode(&reqs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode requests: %w", err)
	}
	return reqs, nil
}

// Render formats one request.
func (f *Formatter) Render(req Request) (Entry, error) {
	var (
		text string
		err  error
	)
	if req.Wiki {
		if len(req.Args) > 0 {
			return Entry{}, fmt.Errorf("render %q: %w: wiki text takes no arguments", req.Key, ErrInvalidArgument)
		}
		text, err = f.FormatWiki(req.Template)
	} else {
		text, err = f.Format(req.Template, req.Args...)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("render %q: %w", req.Key, err)
	}
	return Entry{Key: req.Key, Text: text}, nil
}

// RenderAll renders requests lazily. A failed request yields its error and
// iteration continues with the next one, so callers decide whether one bad
// record aborts the run.
func (f *Formatter) RenderAll(reqs iter.Seq[Request]) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for req := range reqs {
			if !yield(f.Render(req)) {
				return
			}
		}
	}
}
