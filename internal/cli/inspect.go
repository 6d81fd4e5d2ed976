package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	as "github.com/aluitink/ActivityStreams"
)

// inspectCommand creates the "inspect" command.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the decoded graph as a tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.decode(args)
			if err != nil {
				return err
			}
			return writeTree(c.out, newStyles(c.renderer), n)
		},
	}
}

type edge struct {
	prop  string
	child as.Node
}

// writeTree writes n and every node it holds, one per line.
func writeTree(w io.Writer, s styles, n as.Node) error {
	if _, err := fmt.Fprintln(w, s.label(n)); err != nil {
		return err
	}
	return writeChildren(w, s, n, "")
}

func writeChildren(w io.Writer, s styles, n as.Node, prefix string) error {
	var edges []edge
	for prop, child := range as.Children(n) {
		edges = append(edges, edge{prop: prop, child: child})
	}

	for i, e := range edges {
		branch, indent := "├── ", "│   "
		if i == len(edges)-1 {
			branch, indent = "└── ", "    "
		}

		if _, err := fmt.Fprintf(w, "%s%s%s %s\n", prefix, branch, s.prop.Render(e.prop+":"), s.label(e.child)); err != nil {
			return err
		}
		if err := writeChildren(w, s, e.child, prefix+indent); err != nil {
			return err
		}
	}

	return nil
}
