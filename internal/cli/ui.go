package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	as "github.com/aluitink/ActivityStreams"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - types
	colorGreen = lipgloss.Color("35")  // Green - Link roles
	colorBlue  = lipgloss.Color("75")  // Light blue - IRIs
	colorGray  = lipgloss.Color("245") // Gray - property names
	colorDim   = lipgloss.Color("240") // Dim gray - untyped nodes
)

// styles holds the styles for one output. They're bound to the output's
// renderer so colours are only used on terminals.
type styles struct {
	kind    lipgloss.Style
	untyped lipgloss.Style
	link    lipgloss.Style
	prop    lipgloss.Style
	role    lipgloss.Style
	id      lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		kind:    r.NewStyle().Bold(true).Foreground(colorCyan),
		untyped: r.NewStyle().Italic(true).Foreground(colorDim),
		link:    r.NewStyle().Foreground(colorBlue).Underline(true),
		prop:    r.NewStyle().Foreground(colorGray),
		role:    r.NewStyle().Foreground(colorGreen),
		id:      r.NewStyle().Foreground(colorBlue),
	}
}

const (
	iconArrow = "→"
)

// label describes a node on a single line: its types, its id and, for
// Links, where it points to.
func (s styles) label(n as.Node) string {
	b := n.Common()
	_, isLink := n.AsLink()

	var parts []string
	switch {
	case len(b.Type) > 0:
		parts = append(parts, s.kind.Render(strings.Join(b.Type, ", ")))
	case isLink:
		parts = append(parts, s.untyped.Render("Link"))
	default:
		parts = append(parts, s.untyped.Render("Object"))
	}

	if b.ID != "" {
		parts = append(parts, s.id.Render(b.ID))
	}

	if l, ok := n.AsLink(); ok && l.Href != "" {
		parts = append(parts, iconArrow, s.link.Render(l.Href))
	}

	if name, ok := b.Name.First(); ok {
		parts = append(parts, s.prop.Render("“"+name+"”"))
	}

	return strings.Join(parts, " ")
}
