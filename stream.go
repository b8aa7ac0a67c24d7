package wikifmt

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"
)

// WriteIter writes entries from seq as they arrive. Line-oriented formats
// (Plain, JSONL, CSV, TSV, Properties, GoTemplate) write each entry
// immediately; JSON streams array elements. Markdown, WikiTable and Table
// need every row for their layout and YAML needs a complete document, so
// those collect first.
func WriteIter(w io.Writer, f Format, seq iter.Seq[Entry]) error {
	switch f {
	case Plain:
		return streamEach(w, seq, func(w io.Writer, e Entry) error {
			_, err := fmt.Fprintln(w, e.Text)
			return err
		})
	case JSON:
		return streamJSON(w, seq)
	case JSONL:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return streamEach(w, seq, func(_ io.Writer, e Entry) error {
			return enc.Encode(e)
		})
	case CSV:
		return streamHeaded(w, seq, writeCSVRow, func(w io.Writer, e Entry) error {
			return writeCSVRow(w, []string{e.Key, e.Text})
		})
	case TSV:
		return streamHeaded(w, seq, func(w io.Writer, row []string) error {
			_, err := fmt.Fprintln(w, strings.Join(row, "\t"))
			return err
		}, writeTSVRow)
	case Properties:
		return streamEach(w, seq, writePropertiesEntry)
	case YAML, Markdown, WikiTable, Table:
		return streamCollect(w, f, seq)
	default:
		if tmplStr, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			tmpl, err := parseGoTemplate(tmplStr)
			if err != nil {
				return err
			}
			return streamEach(w, seq, func(w io.Writer, e Entry) error {
				return writeGoTemplateEntry(w, tmpl, e)
			})
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func streamEach(w io.Writer, seq iter.Seq[Entry], write func(io.Writer, Entry) error) error {
	for e := range seq {
		if err := write(w, e); err != nil {
			return err
		}
	}
	return nil
}

// streamHeaded writes the header before the first entry only, so an empty
// sequence produces no output, matching Write.
func streamHeaded(w io.Writer, seq iter.Seq[Entry], header func(io.Writer, []string) error, row func(io.Writer, Entry) error) error {
	first := true
	for e := range seq {
		if first {
			first = false
			if err := header(w, entryHeader); err != nil {
				return err
			}
		}
		if err := row(w, e); err != nil {
			return err
		}
	}
	return nil
}

func streamCollect(w io.Writer, f Format, seq iter.Seq[Entry]) error {
	var entries []Entry
	for e := range seq {
		entries = append(entries, e)
	}
	return Write(w, f, entries...)
}

func streamJSON(w io.Writer, seq iter.Seq[Entry]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	first := true
	for e := range seq {
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}
