package render

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// HostOptions selects the hosting mode for the HTML serialization. The
// visual output of a page is identical in both modes; Interactive only adds
// the surrounding chrome (page gaps, shadows) for on-screen browsing, while
// the capture host needs pages stacked edge to edge at exact size.
type HostOptions struct {
	Title       string
	Interactive bool
}

// WriteHTML serializes a visual tree into a standalone HTML document.
func WriteHTML(w io.Writer, tree *VisualTree, opts HostOptions) error {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(opts.Title) + "</title>\n")
	b.WriteString("<style>\n")
	if opts.Interactive {
		b.WriteString("body{margin:0;background:#f3f4f6;}\n.page{margin:16px auto;box-shadow:0 1px 4px rgba(0,0,0,0.25);}\n")
	} else {
		b.WriteString("body{margin:0;background:#ffffff;}\n.page{margin:0;}\n")
	}
	b.WriteString(tree.CSS)
	b.WriteString("</style>\n</head>\n<body>\n")
	writeNode(&b, tree.Root)
	b.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeNode(b *strings.Builder, n *Node) {
	b.WriteString("<")
	b.WriteString(n.Tag)
	if n.ID != "" {
		fmt.Fprintf(b, " id=%q", n.ID)
	}
	if n.Class != "" {
		fmt.Fprintf(b, " class=%q", n.Class)
	}
	if n.Style != "" {
		fmt.Fprintf(b, " style=%q", n.Style)
	}
	b.WriteString(">")
	if n.Text != "" {
		b.WriteString(html.EscapeString(n.Text))
	}
	for _, child := range n.Children {
		writeNode(b, child)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">")
}
