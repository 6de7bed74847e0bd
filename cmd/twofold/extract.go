package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/twofold/pkg/logging"
	"github.com/arthur-debert/twofold/pkg/manifest"
	"github.com/arthur-debert/twofold/pkg/template"
)

func newExtractCmd() *cobra.Command {
	var outFormat string

	cmd := &cobra.Command{
		Use:   "extract <manifest> [file]",
		Short: "Read the values back out of filled text",
		Long: `Extract walks text that matches the manifest's template structure and
pulls out the value occupying each target, using the target's pattern or
kind. The input comes from the named file, or stdin when the file is
omitted or "-". Targets that never occur, or that carry no pattern,
extract as null.`,
		Example: `  twofold extract greeting.toml filled.txt
  echo "Hello Ada, you are 36 years old." | twofold extract greeting.toml --format json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("extract")
			defer logging.LogOperationStart(logger, "extract")()

			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 2 && args[1] != "-" {
				data, err = os.ReadFile(args[1])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			patterns, err := m.Patterns()
			if err != nil {
				return err
			}

			candidate := strings.TrimSuffix(string(data), "\n")
			values, err := m.Compile().Reader(patterns...).Read(candidate)
			if err != nil {
				return err
			}
			return printValues(cmd.OutOrStdout(), m, values, outFormat)
		},
	}

	cmd.Flags().StringVar(&outFormat, "format", "yaml", "Output format: yaml, json, toml or xml")
	return cmd
}

func printValues(w io.Writer, m *manifest.Manifest, values []template.Value, outFormat string) error {
	switch outFormat {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(valueMap(m, values))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(valueMap(m, values))
	case "toml":
		// TOML has no null: absent targets are omitted.
		found := make(map[string]string)
		for i, t := range m.Targets {
			if values[i].Found {
				found[t.Name] = values[i].Text
			}
		}
		return toml.NewEncoder(w).Encode(found)
	case "xml":
		doc := etree.NewDocument()
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
		root := doc.CreateElement("values")
		for i, t := range m.Targets {
			el := root.CreateElement("value")
			el.CreateAttr("name", t.Name)
			if values[i].Found {
				el.SetText(values[i].Text)
			} else {
				el.CreateAttr("absent", "true")
			}
		}
		doc.Indent(2)
		_, err := doc.WriteTo(w)
		return err
	}
	return fmt.Errorf("unknown output format %q (want yaml, json, toml or xml)", outFormat)
}

func valueMap(m *manifest.Manifest, values []template.Value) map[string]any {
	out := make(map[string]any, len(values))
	for i, t := range m.Targets {
		if values[i].Found {
			out[t.Name] = values[i].Text
		} else {
			out[t.Name] = nil
		}
	}
	return out
}
