package layout

import "resume-studio/internal/template"

// Role classifies a laid-out text line so the renderer can style it without
// re-deriving structure.
type Role string

const (
	RoleName     Role = "name"
	RoleContact  Role = "contact"
	RoleSummary  Role = "summary"
	RoleHeading  Role = "heading"
	RoleTitle    Role = "title"
	RoleSubtitle Role = "subtitle"
	RoleMeta     Role = "meta"
	RoleBody     Role = "body"
	RoleBullet   Role = "bullet"
)

// Kind distinguishes the three block shapes the engine emits.
type Kind string

const (
	KindHeader  Kind = "header"
	KindHeading Kind = "heading"
	KindEntry   Kind = "entry"
)

// Line is one wrapped line of text with its style role. Indent is an extra
// left offset in points (bullet continuations).
type Line struct {
	Role   Role    `json:"role"`
	Text   string  `json:"text"`
	Indent float64 `json:"indent,omitempty"`
}

// Block is a positioned, paginated piece of content. EntryID references the
// source collection entry (empty for the personal-info header and contact
// rail) and doubles as a stable re-render key.
type Block struct {
	Page    int              `json:"page"`
	Column  int              `json:"column"`
	Section template.Section `json:"section"`
	Kind    Kind             `json:"kind"`
	EntryID string           `json:"entryId,omitempty"`
	X       float64          `json:"x"`
	Y       float64          `json:"y"`
	Width   float64          `json:"width"`
	Height  float64          `json:"height"`
	Lines   []Line           `json:"lines"`
}

// Overflows reports whether the block is taller than a full content page.
// Such a block is placed alone on its own page without splitting; callers
// should log it as a warning-level condition, not treat it as fatal.
func (b Block) Overflows(page PageGeometry) bool {
	return b.Height > page.ContentHeight()
}

// PageCount returns the number of physical pages spanned by a block
// sequence. An empty sequence still renders one blank page.
func PageCount(blocks []Block) int {
	max := 0
	for _, b := range blocks {
		if b.Page > max {
			max = b.Page
		}
	}
	return max + 1
}
