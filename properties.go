package wikifmt

import (
	"fmt"
	"io"
	"strings"
)

// propertiesKeyEscaper and propertiesValueEscaper follow the Java
// .properties conventions used by translation catalogs.
var (
	propertiesKeyEscaper = strings.NewReplacer(
		`\`, `\\`, "=", `\=`, ":", `\:`, " ", `\ `, "#", `\#`, "!", `\!`,
		"\n", `\n`, "\r", `\r`, "\t", `\t`,
	)
	propertiesValueEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
)

func writeProperties(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if err := writePropertiesEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

func writePropertiesEntry(w io.Writer, e Entry) error {
	value := propertiesValueEscaper.Replace(e.Text)
	// Leading whitespace in a value is otherwise dropped by readers.
	if trimmed := strings.TrimLeft(value, " "); len(trimmed) < len(value) {
		value = strings.Repeat(`\ `, len(value)-len(trimmed)) + trimmed
	}
	_, err := fmt.Fprintf(w, "%s=%s\n", propertiesKeyEscaper.Replace(e.Key), value)
	return err
}
