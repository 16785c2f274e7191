package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// printSelection writes confirmed picks in the configured format
func printSelection(w io.Writer, selection []string, format string) error {
	switch format {
	case "json":
		if selection == nil {
			selection = []string{}
		}
		return json.NewEncoder(w).Encode(selection)
	case "lines", "":
		for _, v := range selection {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
