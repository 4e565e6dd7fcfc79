package render

import (
	"strconv"
	"strings"

	"github.com/vk/weave/component"
)

// Tree draws the tree under root, one component per line.
func Tree(root component.Component) string {
	snap := Snapshot(root)
	var b strings.Builder
	b.WriteString(line(snap))
	b.WriteByte('\n')
	writeChildren(&b, snap.Children, "")
	return strings.TrimRight(b.String(), "\n")
}

// Framed draws the tree inside a titled border.
func Framed(title string, root component.Component) string {
	return FrameStyle.Render(TitleStyle.Render(title) + "\n" + Tree(root))
}

func writeChildren(b *strings.Builder, children []*Node, prefix string) {
	for i, child := range children {
		branch, indent := "├── ", "│   "
		if i == len(children)-1 {
			branch, indent = "└── ", "    "
		}
		b.WriteString(BranchStyle.Render(prefix + branch))
		b.WriteString(line(child))
		b.WriteByte('\n')
		writeChildren(b, child.Children, prefix+indent)
	}
}

func line(n *Node) string {
	parts := []string{TypeStyle.Render(n.Type)}
	if n.ID != "" {
		parts = append(parts, IDStyle.Render("#"+n.ID))
	}
	if n.Caption != "" {
		parts = append(parts, CaptionStyle.Render(`"`+n.Caption+`"`))
	}
	if n.Value != "" {
		parts = append(parts, ValueStyle.Render("= "+n.Value))
	}
	if n.Rows > 0 {
		parts = append(parts, ValueStyle.Render("["+strconv.Itoa(n.Rows)+" rows]"))
	}
	if n.Disabled {
		parts = append(parts, DisabledStyle.Render("(disabled)"))
	}
	return strings.Join(parts, " ")
}
