package output

import (
	"strings"

	"github.com/teatonedev/nicetree/pkg/tree"
	"github.com/teatonedev/nicetree/pkg/util"
)

// circularMarker stands in for a symlink target that could not be resolved.
const circularMarker = "[circular]"

// formatTree renders the classic box-drawing layout. The root line carries
// no connector; every other line is prefixed with one pipe-or-blank segment
// per ancestor plus the connector for the node itself.
func (f *formatter) formatTree(node *tree.Node, showRoot bool) string {
	if node == nil {
		return ""
	}

	var lines []string
	if showRoot {
		lines = append(lines, f.displayName(node))
	}
	for i, child := range node.Children {
		lines = f.appendTreeLines(lines, child, "", i == len(node.Children)-1)
	}
	return strings.Join(lines, "\n")
}

func (f *formatter) appendTreeLines(lines []string, node *tree.Node, prefix string, isLast bool) []string {
	connector := f.glyphs.branch
	if isLast {
		connector = f.glyphs.last
	}
	lines = append(lines, prefix+connector+f.displayName(node))

	extension := f.glyphs.pipe
	if isLast {
		extension = f.glyphs.blank
	}
	for i, child := range node.Children {
		lines = f.appendTreeLines(lines, child, prefix+extension, i == len(node.Children)-1)
	}
	return lines
}

// formatSimple renders a flat listing: one display name per line in the same
// depth-first order as the tree encoding, without drawing glyphs.
func (f *formatter) formatSimple(node *tree.Node, showRoot bool) string {
	if node == nil {
		return ""
	}

	var lines []string
	if showRoot {
		lines = append(lines, f.displayName(node))
	}
	var walk func(*tree.Node)
	walk = func(n *tree.Node) {
		for _, child := range n.Children {
			lines = append(lines, f.displayName(child))
			walk(child)
		}
	}
	walk(node)
	return strings.Join(lines, "\n")
}

// displayName formats one node for the tree and simple encodings: trailing
// separator on directories, arrow plus resolved target on symlinks, color
// spans, and an optional human-readable size suffix.
func (f *formatter) displayName(node *tree.Node) string {
	name := node.Name

	if node.IsDir && !strings.HasSuffix(name, "/") {
		name += "/"
	}

	if node.IsSymlink {
		target := node.LinkTarget
		if target == "" {
			target = circularMarker
		}
		name += " -> " + target
	}

	if f.cfg.Colors {
		switch {
		case node.IsSymlink:
			name = f.linkColor.Sprint(name)
		case node.IsDir:
			name = f.dirColor.Sprint(name)
		}
	}

	if f.cfg.ShowSize && node.Size > 0 {
		size := "(" + util.FormatSize(node.Size) + ")"
		if f.cfg.Colors {
			size = f.sizeColor.Sprint(size)
		}
		name += " " + size
	}

	return name
}
