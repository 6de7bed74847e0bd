package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/twofold/pkg/logging"
	"github.com/arthur-debert/twofold/pkg/manifest"
)

func newFillCmd() *cobra.Command {
	var (
		valuesFile string
		sets       []string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "fill <manifest>",
		Short: "Fill a template with values",
		Long: `Fill compiles the manifest's template and substitutes a value for each
target. Values come from a YAML file mapping target names to strings
(--values) and from repeated --set name=value flags; --set wins when both
bind the same target. Unbound targets are filled with the empty string.`,
		Example: `  twofold fill greeting.toml --set '{name}=World'
  twofold fill release.toml --values release.yaml -o notes.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("fill")
			defer logging.LogOperationStart(logger, "fill")()

			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			values := make([]string, len(m.Targets))
			if valuesFile != "" {
				data, err := os.ReadFile(valuesFile)
				if err != nil {
					return fmt.Errorf("failed to read values file: %w", err)
				}
				var byName map[string]string
				if err := yaml.Unmarshal(data, &byName); err != nil {
					return fmt.Errorf("failed to parse values file %s: %w", valuesFile, err)
				}
				for name, v := range byName {
					if err := bindValue(m, values, name, v); err != nil {
						return err
					}
				}
			}
			for _, kv := range sets {
				name, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("--set wants name=value, got %q", kv)
				}
				if err := bindValue(m, values, name, v); err != nil {
					return err
				}
			}

			out := m.Compile().Write(values...)
			if outPath == "" || outPath == "-" {
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			return os.WriteFile(outPath, []byte(out), 0644)
		},
	}

	cmd.Flags().StringVar(&valuesFile, "values", "", "YAML file mapping target names to values")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Bind one target (name=value); repeatable")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the result to a file instead of stdout")
	return cmd
}

func bindValue(m *manifest.Manifest, values []string, name, v string) error {
	i, ok := m.Index(name)
	if !ok {
		if hint := m.Closest(name); hint != "" {
			return fmt.Errorf("unknown target %q (did you mean %q?)", name, hint)
		}
		return fmt.Errorf("unknown target %q", name)
	}
	values[i] = v
	return nil
}
