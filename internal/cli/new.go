package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	as "github.com/aluitink/ActivityStreams"
)

// newCommand creates the "new" command.
func (c *CLI) newCommand() *cobra.Command {
	var (
		base   string
		indent string
	)

	cmd := &cobra.Command{
		Use:   "new <type>",
		Short: "Print a new node of a vocabulary type",
		Long: `Print a new node of a vocabulary type.

When a base IRI is given, through --base or the mint.base setting, the node
gets a fresh id under it.`,
		Example: "  asld new Note --base https://example.org/notes/",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, ok := as.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown type %q, see asld types", args[0])
			}

			if !cmd.Flags().Changed("base") {
				base = c.config.Mint.Base
			}

			n := ctor()
			if base != "" {
				id, err := as.MintID(base)
				if err != nil {
					return err
				}
				n.Common().ID = id
				c.Logger.Debug("minted id", "id", id)
			}

			return c.write(n, indent)
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "mint an id under this IRI")
	cmd.Flags().StringVar(&indent, "indent", "  ", "indent output with this string")

	return cmd
}
