package wikifmt

import (
	"fmt"
	"io"
	"strings"
)

// tsvEscaper keeps every entry on one line with tab-free cells.
var tsvEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

func writeTSV(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, strings.Join(entryHeader, "\t")); err != nil {
		return err
	}
	for _, e := range entries {
		if err := writeTSVRow(w, e); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, e Entry) error {
	_, err := fmt.Fprintf(w, "%s\t%s\n", tsvEscaper.Replace(e.Key), tsvEscaper.Replace(e.Text))
	return err
}
