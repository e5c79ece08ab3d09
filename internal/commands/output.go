package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// textual is implemented by outputs with a plain text form.
type textual interface {
	Text() string
}

func writeOutput(w io.Writer, format string, v textual) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)

		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	case "text", "":
		_, err := fmt.Fprintln(w, v.Text())
		return err
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}
