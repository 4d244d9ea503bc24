package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/styletools/stylec/internal/project"
	"github.com/styletools/stylec/internal/style"
)

var (
	swatchNameStyle     = lipgloss.NewStyle().Bold(true)
	swatchFallbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func newColorsCmd(root *rootFlags) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Preview the project palette in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := project.Load(projectPath)
			if err != nil {
				return err
			}

			palette := proj.Palette()
			if palette == nil {
				return fmt.Errorf("project %q declares no palette module", proj.Manifest.Name)
			}

			renderPalette(cmd.OutOrStdout(), palette)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectPath, "project", "p", "", "Path to the project manifest")
	cmd.MarkFlagRequired("project") //nolint:errcheck

	return cmd
}

func renderPalette(out io.Writer, palette *style.Module) {
	width := 0
	for _, variable := range palette.Variables {
		if n := len(variable.Identifier()); n > width {
			width = n
		}
	}

	for _, variable := range palette.Variables {
		hex := "#" + style.HexValue(variable.Value.Color)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")

		line := fmt.Sprintf("%s  %s  %s",
			swatch,
			swatchNameStyle.Render(fmt.Sprintf("%-*s", width, variable.Identifier())),
			hex)
		if fallback := variable.Value.FallbackName(); fallback != "" {
			line += "  " + swatchFallbackStyle.Render("follows "+fallback)
		}
		fmt.Fprintln(out, line)
	}
}
