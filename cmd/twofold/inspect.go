package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/twofold/pkg/manifest"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <manifest>",
		Short: "Show how a template resolves into blocks",
		Long: `Inspect compiles the manifest and prints the resulting segmentation:
each block's static text and the target that follows it, then the static
suffix. Overlapping targets have already been resolved foremost-longest,
so this is exactly what fill and extract will walk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			tmpl := m.Compile()
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, render(headerStyle,
				fmt.Sprintf("%d block(s), %d target(s)", tmpl.BlockCount(), tmpl.TargetCount())))
			for i := 0; i < tmpl.BlockCount(); i++ {
				bl := tmpl.BlockAt(i)
				fmt.Fprintf(w, "%3d  %s + %s\n", i,
					render(mutedStyle, fmt.Sprintf("%q", bl.Text)),
					render(targetStyle, tmpl.TargetAt(bl.Target)))
			}
			fmt.Fprintf(w, "     %s\n", render(mutedStyle, fmt.Sprintf("%q", tmpl.Suffix())))

			for i := 0; i < tmpl.TargetCount(); i++ {
				if !tmpl.Occurs(i) {
					fmt.Fprintf(w, "note: target %s does not occur in the template\n", tmpl.TargetAt(i))
				}
			}
			return nil
		},
	}
	return cmd
}
