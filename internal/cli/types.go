package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	as "github.com/aluitink/ActivityStreams"
)

// typesCommand creates the "types" command.
func (c *CLI) typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the vocabulary types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newStyles(c.renderer)
			name := c.renderer.NewStyle().Width(24)

			for tag := range as.Types() {
				role := "Object"
				if as.IsLinkType(tag) {
					role = "Link"
				}

				line := lipgloss.JoinHorizontal(lipgloss.Top,
					name.Render(s.kind.Render(tag)),
					s.role.Render(role),
				)
				if _, err := fmt.Fprintln(c.out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
