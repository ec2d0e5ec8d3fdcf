package render

import (
	"fmt"
	"strings"

	"resume-studio/internal/layout"
	"resume-studio/internal/model"
	"resume-studio/internal/template"
)

// fontStacks maps the theme font enum to a concrete stack. Unknown values
// fall back to the inter stack; fonts are cosmetic and must never block
// rendering.
var fontStacks = map[string]string{
	"inter":    "'Inter','Helvetica Neue',Arial,sans-serif",
	"roboto":   "'Roboto','Helvetica Neue',Arial,sans-serif",
	"opensans": "'Open Sans','Helvetica Neue',Arial,sans-serif",
	"poppins":  "'Poppins','Helvetica Neue',Arial,sans-serif",
}

var headingScales = map[string]float64{"sm": 0.9, "md": 1.0, "lg": 1.15}

// Render walks the block sequence and produces the visual tree for the
// template's style rules with the theme applied on top. It is referentially
// transparent: no side effects, no ambient reads, identical output for
// identical (blocks, def, theme, page).
func Render(blocks []layout.Block, def template.Definition, theme model.ResumeTheme, page layout.PageGeometry) *VisualTree {
	pages := layout.PageCount(blocks)

	root := &Node{Tag: "div", Class: "document"}
	pageNodes := make([]*Node, pages)
	for i := 0; i < pages; i++ {
		pageNodes[i] = root.add(&Node{
			Tag:   "div",
			Class: "page",
			ID:    fmt.Sprintf("page-%d", i),
			Style: fmt.Sprintf("width:%.2fpt;height:%.2fpt;", page.Width, page.Height),
		})
	}

	for _, b := range blocks {
		node := pageNodes[b.Page].add(&Node{
			Tag:   "div",
			Class: blockClass(b, def),
			Style: fmt.Sprintf("left:%.2fpt;top:%.2fpt;width:%.2fpt;", b.X, b.Y, b.Width),
		})
		for _, line := range b.Lines {
			style := ""
			if line.Indent > 0 {
				style = fmt.Sprintf("margin-left:%.2fpt;", line.Indent)
			}
			node.add(&Node{
				Tag:   "div",
				Class: "line role-" + string(line.Role),
				Style: style,
				Text:  line.Text,
			})
		}
	}

	return &VisualTree{Root: root, CSS: stylesheet(def, theme), PageCount: pages}
}

func blockClass(b layout.Block, def template.Definition) string {
	class := fmt.Sprintf("block block-%s section-%s", b.Kind, b.Section)
	if b.Kind == layout.KindHeader {
		switch def.HeaderStyle {
		case template.HeaderBanner:
			class += " banner"
		case template.HeaderCentered:
			class += " centered"
		}
		if def.QuotedSummary {
			class += " quoted"
		}
	}
	if b.Kind == layout.KindHeading && def.CenteredHeadings {
		class += " centered"
	}
	return class
}

// stylesheet derives the document CSS from the template voice plus the
// theme overrides. Theme changes restyle text inside the boxes the layout
// engine measured; they never move block geometry, so pagination is
// identical across themes.
func stylesheet(def template.Definition, theme model.ResumeTheme) string {
	stack, ok := fontStacks[theme.FontFamily]
	if !ok {
		stack = fontStacks["inter"]
	}
	if def.Serif {
		stack = strings.Replace(stack, "sans-serif", "serif", 1)
	}
	primary := theme.PrimaryColor
	if primary == "" {
		primary = model.DefaultTheme().PrimaryColor
	}
	scale, ok := headingScales[theme.HeadingSize]
	if !ok {
		scale = 1.0
	}

	var b strings.Builder
	rule := func(selector, body string) {
		b.WriteString(selector)
		b.WriteString("{")
		b.WriteString(body)
		b.WriteString("}\n")
	}

	rule(".document", "font-family:"+stack+";color:#1f2937;")
	rule(".page", "position:relative;background:#ffffff;overflow:hidden;")
	rule(".block", "position:absolute;")
	rule(".line", "white-space:nowrap;overflow:hidden;")
	rule(".centered .line", "text-align:center;")

	roleRule := func(role layout.Role, extra string) {
		size := layout.FontSize(role)
		if role == layout.RoleName || role == layout.RoleHeading {
			size *= scale
		}
		rule(".role-"+string(role), fmt.Sprintf("font-size:%.2fpt;line-height:%.2fpt;", size, layout.LineHeight(role))+extra)
	}

	roleRule(layout.RoleName, "font-weight:700;color:#111827;")
	roleRule(layout.RoleContact, "color:#4b5563;")
	roleRule(layout.RoleSummary, "color:#374151;")
	roleRule(layout.RoleHeading, "font-weight:700;color:"+primary+";border-bottom:2px solid "+primary+";")
	roleRule(layout.RoleTitle, "font-weight:600;color:#111827;")
	roleRule(layout.RoleSubtitle, "font-weight:500;color:"+primary+";")
	roleRule(layout.RoleMeta, "color:#6b7280;")
	roleRule(layout.RoleBody, "color:#374151;")
	roleRule(layout.RoleBullet, "color:#374151;")

	// No padding on the banner: block geometry comes from the layout engine
	// and must not be inflated by the skin.
	rule(".banner", "background:"+primary+";color:#ffffff;border-radius:6pt;")
	rule(".banner .line", "color:#ffffff;border-color:#ffffff;")
	rule(".quoted .role-summary", "font-style:italic;")

	return b.String()
}
