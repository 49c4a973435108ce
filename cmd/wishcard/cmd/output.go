package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// addOutputFlags registers --json and --yaml on c.
func addOutputFlags(c *cobra.Command) {
	c.Flags().Bool("json", false, "print JSON")
	c.Flags().Bool("yaml", false, "print YAML")
}

// structuredFormat returns "json", "yaml" or "" from the output flags.
func structuredFormat(c *cobra.Command) (string, error) {
	asJSON, _ := c.Flags().GetBool("json")
	asYAML, _ := c.Flags().GetBool("yaml")
	switch {
	case asJSON && asYAML:
		return "", fmt.Errorf("--json and --yaml are mutually exclusive")
	case asJSON:
		return "json", nil
	case asYAML:
		return "yaml", nil
	}
	return "", nil
}

// writeStructured encodes v to w as format.
func writeStructured(w io.Writer, format string, v any) error {
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
	}
	return fmt.Errorf("unknown output format: %s", format)
}
