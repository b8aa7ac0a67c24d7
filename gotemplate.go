package wikifmt

import (
	"fmt"
	"io"
	"text/template"
)

func parseGoTemplate(tmplStr string) (*template.Template, error) {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return tmpl, nil
}

func writeGoTemplate(w io.Writer, tmplStr string, entries []Entry) error {
	tmpl, err := parseGoTemplate(tmplStr)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := writeGoTemplateEntry(w, tmpl, e); err != nil {
			return err
		}
	}
	return nil
}

func writeGoTemplateEntry(w io.Writer, tmpl *template.Template, e Entry) error {
	if err := tmpl.Execute(w, e); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
