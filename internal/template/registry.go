// Package template defines the closed set of built-in resume templates. A
// template fixes column structure, section order and typographic voice;
// cosmetic theme parameters (font, color, heading size) live on the resume
// data and are applied by the renderer.
package template

// ID names a built-in template.
type ID string

const (
	Modern    ID = "modern"
	Classic   ID = "classic"
	Creative  ID = "creative"
	Executive ID = "executive"
)

// Section identifies a logical resume section within a template's order.
type Section string

const (
	SectionHeader       Section = "header"
	SectionContact      Section = "contact"
	SectionExperience   Section = "experience"
	SectionEducation    Section = "education"
	SectionSkills       Section = "skills"
	SectionAchievements Section = "achievements"
	SectionCustom       Section = "custom"
)

// HeaderStyle selects how the personal-info header is presented.
type HeaderStyle string

const (
	HeaderPlain    HeaderStyle = "plain"
	HeaderBanner   HeaderStyle = "banner"
	HeaderCentered HeaderStyle = "centered"
)

// Column assigns a slice of the page width to an ordered list of sections.
// Single-column templates have exactly one column with WidthFrac 1.
type Column struct {
	WidthFrac float64
	Sections  []Section
}

// Definition is a complete layout recipe for one template.
type Definition struct {
	ID                ID
	Name              string
	Columns           []Column
	HeaderStyle       HeaderStyle
	Serif             bool
	UppercaseHeadings bool
	CenteredHeadings  bool
	QuotedSummary     bool
	Bullet            string
	SectionTitles     map[Section]string
	ColumnGap         float64
}

// Title returns the display heading for a section, falling back to the
// section name itself for anything the template does not rename.
func (d Definition) Title(s Section) string {
	if t, ok := d.SectionTitles[s]; ok {
		return t
	}
	return string(s)
}

// builtins holds the four template definitions. Order matters only for All.
var builtins = []Definition{
	{
		ID:          Modern,
		Name:        "Modern",
		HeaderStyle: HeaderPlain,
		Bullet:      "•",
		ColumnGap:   0,
		Columns: []Column{
			{WidthFrac: 1, Sections: []Section{
				SectionHeader, SectionExperience, SectionEducation,
				SectionSkills, SectionAchievements, SectionCustom,
			}},
		},
		SectionTitles: map[Section]string{
			SectionExperience:   "Professional Experience",
			SectionEducation:    "Education",
			SectionSkills:       "Skills",
			SectionAchievements: "Achievements & Awards",
		},
	},
	{
		ID:          Classic,
		Name:        "Classic",
		HeaderStyle: HeaderPlain,
		Serif:       true,
		Bullet:      "•",
		ColumnGap:   24,
		Columns: []Column{
			{WidthFrac: 1.0 / 3.0, Sections: []Section{
				SectionContact, SectionSkills, SectionEducation, SectionAchievements,
			}},
			{WidthFrac: 2.0 / 3.0, Sections: []Section{
				SectionHeader, SectionExperience, SectionCustom,
			}},
		},
		SectionTitles: map[Section]string{
			SectionContact:      "Contact",
			SectionExperience:   "Professional Experience",
			SectionEducation:    "Education",
			SectionSkills:       "Skills",
			SectionAchievements: "Awards",
		},
	},
	{
		ID:          Creative,
		Name:        "Creative",
		HeaderStyle: HeaderBanner,
		Bullet:      "•",
		ColumnGap:   18,
		Columns: []Column{
			{WidthFrac: 1.0 / 3.0, Sections: []Section{
				SectionSkills, SectionEducation, SectionAchievements,
			}},
			{WidthFrac: 2.0 / 3.0, Sections: []Section{
				SectionHeader, SectionExperience, SectionCustom,
			}},
		},
		SectionTitles: map[Section]string{
			SectionExperience:   "Experience",
			SectionEducation:    "Education",
			SectionSkills:       "Skills",
			SectionAchievements: "Awards",
		},
	},
	{
		ID:                Executive,
		Name:              "Executive",
		HeaderStyle:       HeaderCentered,
		Serif:             true,
		UppercaseHeadings: true,
		CenteredHeadings:  true,
		QuotedSummary:     true,
		Bullet:            "▪",
		ColumnGap:         0,
		Columns: []Column{
			{WidthFrac: 1, Sections: []Section{
				SectionHeader, SectionExperience, SectionEducation,
				SectionSkills, SectionAchievements, SectionCustom,
			}},
		},
		SectionTitles: map[Section]string{
			SectionExperience:   "Professional Experience",
			SectionEducation:    "Education",
			SectionSkills:       "Core Competencies",
			SectionAchievements: "Honors & Awards",
		},
	},
}

// Resolve maps a template id to its definition. Template choice is cosmetic
// and must never block rendering, so unrecognized ids fall back to modern
// instead of erroring.
func Resolve(id ID) Definition {
	for _, d := range builtins {
		if d.ID == id {
			return d
		}
	}
	return builtins[0]
}

// All returns the built-in definitions in presentation order.
func All() []Definition {
	out := make([]Definition, len(builtins))
	copy(out, builtins)
	return out
}
