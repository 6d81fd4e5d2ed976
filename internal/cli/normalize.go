package cli

import (
	"github.com/spf13/cobra"
)

// normalizeCommand creates the "normalize" command.
func (c *CLI) normalizeCommand() *cobra.Command {
	var indent string

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Decode a document and encode it again",
		Long: `Decode a document and encode it again.

One-element arrays become bare values, empty properties are dropped and
properties are written in the vocabulary's order. Reads from stdin when no
file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.decode(args)
			if err != nil {
				return err
			}
			return c.write(n, indent)
		},
	}

	cmd.Flags().StringVar(&indent, "indent", "", "indent output with this string")

	return cmd
}
