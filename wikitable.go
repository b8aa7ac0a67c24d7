package wikifmt

import (
	"fmt"
	"io"
	"strings"
)

// writeWikiTable renders a MediaWiki table. The text column is emitted as
// is: entries rendered with FormatWiki are already wiki markup.
func writeWikiTable(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, `{| class="wikitable"`); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "! %s\n", strings.Join(entryHeader, " !! ")); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, "|-"); err != nil {
			return err
		}
		key := templateArgEscaper.Replace(e.Key)
		if _, err := fmt.Fprintf(w, "| %s\n| %s\n", key, e.Text); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "|}")
	return err
}
