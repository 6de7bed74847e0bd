package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideText string

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show the user guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
			if !colorEnabled() {
				options = []glamour.TermRendererOption{glamour.WithStandardStyle("notty")}
			}

			renderer, err := glamour.NewTermRenderer(options...)
			if err != nil {
				// Fall back to the raw markdown.
				fmt.Fprint(cmd.OutOrStdout(), guideText)
				return nil
			}
			rendered, err := renderer.Render(guideText)
			if err != nil {
				rendered = guideText
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
