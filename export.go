package wikifmt

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Format is an output format for rendered entries.
type Format string

const (
	Plain      Format = "plain"
	JSON       Format = "json"
	JSONL      Format = "jsonl"
	YAML       Format = "yaml"
	CSV        Format = "csv"
	TSV        Format = "tsv"
	Markdown   Format = "markdown"
	WikiTable  Format = "wikitable"
	// Table is a bordered table for terminals.
	Table      Format = "table"
	// Properties writes key=text lines for translation catalogs.
	Properties Format = "properties"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Plain, JSON, JSONL, YAML, CSV, TSV, Markdown, WikiTable, Table, Properties}

// entryHeader is the header row of the tabular formats.
var entryHeader = []string{"Key", "Text"}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all static format names. GoTemplate is not included
// because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that executes a text/template against each
// entry and writes the result on its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format name or a go-template=<tmpl> string.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write writes entries to w in format f.
func Write(w io.Writer, f Format, entries ...Entry) error {
	switch f {
	case Plain:
		return writePlain(w, entries)
	case JSON:
		return writeJSON(w, entries)
	case JSONL:
		return writeJSONL(w, entries)
	case YAML:
		return writeYAML(w, entries)
	case CSV:
		return writeCSV(w, entries)
	case TSV:
		return writeTSV(w, entries)
	case Markdown:
		return writeMarkdown(w, entries)
	case WikiTable:
		return writeWikiTable(w, entries)
	case Table:
		return writeTable(w, entries)
	case Properties:
		return writeProperties(w, entries)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, entries)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal writes entries in format f and returns the bytes.
func Marshal(f Format, entries ...Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, entries...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
