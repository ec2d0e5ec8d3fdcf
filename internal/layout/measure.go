package layout

import "strings"

// Text measurement uses fixed per-role font metrics and an average glyph
// width. The numbers only need to be stable and template-independent; the
// renderer draws into the boxes the engine measured, so preview and export
// stay in agreement by construction.

type metric struct {
	Size       float64
	LineHeight float64
}

var roleMetrics = map[Role]metric{
	RoleName:     {Size: 26, LineHeight: 32},
	RoleContact:  {Size: 9.5, LineHeight: 14},
	RoleSummary:  {Size: 10, LineHeight: 15},
	RoleHeading:  {Size: 14, LineHeight: 24},
	RoleTitle:    {Size: 12, LineHeight: 17},
	RoleSubtitle: {Size: 11, LineHeight: 16},
	RoleMeta:     {Size: 9, LineHeight: 13},
	RoleBody:     {Size: 10, LineHeight: 15},
	RoleBullet:   {Size: 10, LineHeight: 15},
}

// avgGlyphWidth approximates glyph advance as a fraction of the font size.
const avgGlyphWidth = 0.52

// bulletIndent is the extra left offset of bullet continuation lines.
const bulletIndent = 12.0

// unitSpacing is the vertical gap appended after every atomic unit.
const unitSpacing = 10.0

// LineHeight exposes the measured height of a line for the renderer.
func LineHeight(r Role) float64 {
	return roleMetrics[r].LineHeight
}

// FontSize exposes the base font size of a role for the renderer.
func FontSize(r Role) float64 {
	return roleMetrics[r].Size
}

func maxChars(width float64, r Role) int {
	n := int(width / (roleMetrics[r].Size * avgGlyphWidth))
	if n < 8 {
		n = 8
	}
	return n
}

// wrapText greedily wraps text at word boundaries to fit the given width.
// A single word longer than a line is placed on its own line unbroken
// (accepted horizontal overflow rather than mid-word splits).
func wrapText(text string, width float64, r Role) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	limit := maxChars(width, r)
	words := strings.Fields(text)

	lines := []string{}
	current := ""
	for _, w := range words {
		switch {
		case current == "":
			current = w
		case len(current)+1+len(w) <= limit:
			current += " " + w
		default:
			lines = append(lines, current)
			current = w
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
