package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// write renders doc as JSON or YAML, or calls text for the plain format.
func write(w io.Writer, format string, doc interface{}, text func(io.Writer) error) error {
	switch format {
	case outputText, "":
		return text(w)
	case outputJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding json")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		_, err = w.Write(data)
		return err
	default:
		return errors.Errorf("unknown output format %q, want one of: %s, %s, %s", format, outputText, outputJSON, outputYAML)
	}
}
