// Package render converts a laid-out block sequence into a visual tree and
// serializes it for a host. There is exactly one renderer and one HTML
// serialization; the interactive preview, the public read-only view and the
// headless export capture all consume it, which is what keeps preview and
// export in visual agreement.
package render

// Node is a box in the visual tree: nested containers with text, class
// hooks for the stylesheet, and inline geometry. Styles are carried as a
// preformatted string so serialization is byte-stable.
type Node struct {
	Tag      string
	Class    string
	ID       string
	Style    string
	Text     string
	Children []*Node
}

func (n *Node) add(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// VisualTree is the renderer output: the document root, the stylesheet
// derived from template and theme, and the page count.
type VisualTree struct {
	Root      *Node
	CSS       string
	PageCount int
}
