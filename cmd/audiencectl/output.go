package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// render writes v as json or yaml, or calls text for the default format
func render(w io.Writer, format string, v any, text func() string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		_, err := fmt.Fprintln(w, text())
		return err
	default:
		return oops.Errorf("unsupported output format %q (use text, json or yaml)", format)
	}
}

// decodeFile decodes a yaml or json document into v, rejecting unknown fields
func decodeFile(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && err != io.EOF {
		return err
	}
	return nil
}
