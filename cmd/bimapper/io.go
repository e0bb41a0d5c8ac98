package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// readInput reads the value to map from the first argument, or from
// stdin when there is none or it is "-". JSON input is read as YAML.
func readInput(args []string) (any, error) {
	var r io.Reader = os.Stdin
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", args[0], err)
		}
		defer f.Close()
		r, name = f, args[0]
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decodeInput(name, data)
}

func decodeInput(name string, data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	return v, nil
}

func writeOutput(w io.Writer, v any, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
