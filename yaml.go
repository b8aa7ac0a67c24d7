package wikifmt

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}
