package layout

import (
	"strings"

	"resume-studio/internal/model"
	"resume-studio/internal/template"
)

// unit is an atomic flow of lines that is never split across a page
// boundary. Height includes the trailing unit spacing.
type unit struct {
	section template.Section
	kind    Kind
	entryID string
	lines   []Line
}

func (u unit) height() float64 {
	h := 0.0
	for _, l := range u.lines {
		h += roleMetrics[l.Role].LineHeight
	}
	return h + unitSpacing
}

// Layout resolves the template's section order, builds one atomic unit per
// non-empty entry, and greedily packs units into pages column by column.
// Empty sections produce no blocks at all. The result is deterministic:
// no randomness, no wall-clock reads, no map iteration over data.
func Layout(data *model.ResumeData, def template.Definition, page PageGeometry) []Block {
	if data == nil {
		return nil
	}

	contentW := page.ContentWidth()
	gapTotal := def.ColumnGap * float64(len(def.Columns)-1)

	blocks := []Block{}
	x := page.MarginLeft
	for colIdx, col := range def.Columns {
		colW := (contentW - gapTotal) * col.WidthFrac
		units := buildColumnUnits(data, def, col, colW)
		blocks = append(blocks, packColumn(units, colIdx, x, colW, page)...)
		x += colW + def.ColumnGap
	}
	return blocks
}

// packColumn assigns units of one column to pages. A section heading is
// never orphaned: it is placed together with its first entry or pushed to
// the next page with it. A unit taller than a full page gets a page to
// itself and overflows rather than being split.
func packColumn(units []unit, col int, x, width float64, page PageGeometry) []Block {
	limit := page.ContentHeight()
	blocks := make([]Block, 0, len(units))

	pageIdx := 0
	y := 0.0
	keepWithPrev := false
	for i, u := range units {
		h := u.height()
		needed := h
		if u.kind == KindHeading && i+1 < len(units) {
			needed += units[i+1].height()
		}
		// keepWithPrev pins the first entry to its heading even when the pair
		// cannot fit a fresh page; the entry then overflows instead of leaving
		// the heading stranded.
		if y > 0 && y+needed > limit && !keepWithPrev {
			pageIdx++
			y = 0
		}
		keepWithPrev = u.kind == KindHeading
		blocks = append(blocks, Block{
			Page:    pageIdx,
			Column:  col,
			Section: u.section,
			Kind:    u.kind,
			EntryID: u.entryID,
			X:       x,
			Y:       page.MarginTop + y,
			Width:   width,
			Height:  h - unitSpacing,
			Lines:   u.lines,
		})
		y += h
	}
	return blocks
}

func buildColumnUnits(data *model.ResumeData, def template.Definition, col template.Column, width float64) []unit {
	units := []unit{}
	for _, section := range col.Sections {
		switch section {
		case template.SectionHeader:
			units = append(units, buildHeaderUnit(data.PersonalInfo, width))
		case template.SectionContact:
			units = append(units, buildContactUnits(data.PersonalInfo, def, width)...)
		case template.SectionExperience:
			units = append(units, buildExperienceUnits(data.Experience, def, width)...)
		case template.SectionEducation:
			units = append(units, buildEducationUnits(data.Education, def, width)...)
		case template.SectionSkills:
			units = append(units, buildSkillUnits(data.Skills, def, width)...)
		case template.SectionAchievements:
			units = append(units, buildAchievementUnits(data.Achievements, def, width)...)
		case template.SectionCustom:
			units = append(units, buildCustomUnits(data.CustomSections, def, width)...)
		}
	}
	return units
}

func headingUnit(section template.Section, def template.Definition, title, entryID string) unit {
	if def.UppercaseHeadings {
		title = strings.ToUpper(title)
	}
	return unit{
		section: section,
		kind:    KindHeading,
		entryID: entryID,
		lines:   []Line{{Role: RoleHeading, Text: title}},
	}
}

// buildHeaderUnit lays out the personal-info header: name, a joined contact
// line, and the summary. Absent optional fields are simply omitted.
func buildHeaderUnit(p model.PersonalInfo, width float64) unit {
	lines := []Line{}
	for _, l := range wrapText(p.FullName, width, RoleName) {
		lines = append(lines, Line{Role: RoleName, Text: l})
	}
	if contact := joinNonEmpty(" | ", p.Email, p.Phone, p.Location, p.Website, p.LinkedIn, p.GitHub); contact != "" {
		for _, l := range wrapText(contact, width, RoleContact) {
			lines = append(lines, Line{Role: RoleContact, Text: l})
		}
	}
	for _, l := range wrapText(p.Summary, width, RoleSummary) {
		lines = append(lines, Line{Role: RoleSummary, Text: l})
	}
	return unit{section: template.SectionHeader, kind: KindHeader, lines: lines}
}

// buildContactUnits emits the persistent contact rail used by the classic
// template: one line per present field.
func buildContactUnits(p model.PersonalInfo, def template.Definition, width float64) []unit {
	fields := []string{p.Email, p.Phone, p.Location, p.Website, p.LinkedIn, p.GitHub}
	lines := []Line{}
	for _, f := range fields {
		if f == "" {
			continue
		}
		for _, l := range wrapText(f, width, RoleMeta) {
			lines = append(lines, Line{Role: RoleMeta, Text: l})
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return []unit{
		headingUnit(template.SectionContact, def, def.Title(template.SectionContact), ""),
		{section: template.SectionContact, kind: KindEntry, lines: lines},
	}
}

func buildExperienceUnits(entries []model.Experience, def template.Definition, width float64) []unit {
	if len(entries) == 0 {
		return nil
	}
	units := []unit{headingUnit(template.SectionExperience, def, def.Title(template.SectionExperience), "")}
	for _, exp := range entries {
		lines := []Line{}
		appendWrapped(&lines, exp.JobTitle, width, RoleTitle)
		appendWrapped(&lines, exp.Company, width, RoleSubtitle)
		meta := joinNonEmpty(" | ", model.DateRange(exp.StartDate, exp.EndDate, exp.Current), exp.Location)
		appendWrapped(&lines, meta, width, RoleMeta)
		appendWrapped(&lines, exp.Description, width, RoleBody)
		appendBullets(&lines, exp.Achievements, def.Bullet, width)
		units = append(units, unit{
			section: template.SectionExperience,
			kind:    KindEntry,
			entryID: exp.ID,
			lines:   lines,
		})
	}
	return units
}

func buildEducationUnits(entries []model.Education, def template.Definition, width float64) []unit {
	if len(entries) == 0 {
		return nil
	}
	units := []unit{headingUnit(template.SectionEducation, def, def.Title(template.SectionEducation), "")}
	for _, edu := range entries {
		lines := []Line{}
		appendWrapped(&lines, edu.Degree, width, RoleTitle)
		appendWrapped(&lines, edu.Institution, width, RoleSubtitle)
		appendWrapped(&lines, edu.FieldOfStudy, width, RoleMeta)
		meta := joinNonEmpty(" | ", model.DateRange(edu.StartDate, edu.EndDate, false), edu.Location)
		if edu.GPA != "" {
			meta = joinNonEmpty(" | ", meta, "GPA: "+edu.GPA)
		}
		appendWrapped(&lines, meta, width, RoleMeta)
		appendWrapped(&lines, edu.Description, width, RoleBody)
		appendBullets(&lines, edu.Achievements, def.Bullet, width)
		units = append(units, unit{
			section: template.SectionEducation,
			kind:    KindEntry,
			entryID: edu.ID,
			lines:   lines,
		})
	}
	return units
}

func buildSkillUnits(groups []model.SkillGroup, def template.Definition, width float64) []unit {
	if len(groups) == 0 {
		return nil
	}
	units := []unit{headingUnit(template.SectionSkills, def, def.Title(template.SectionSkills), "")}
	for _, g := range groups {
		lines := []Line{}
		appendWrapped(&lines, g.Category, width, RoleTitle)
		names := make([]string, 0, len(g.Items))
		for _, item := range g.Items {
			name := item.Name
			// Intermediate is the baseline and is not called out.
			if item.Level != "" && item.Level != model.LevelIntermediate {
				name += " (" + string(item.Level) + ")"
			}
			names = append(names, name)
		}
		appendWrapped(&lines, strings.Join(names, ", "), width, RoleBody)
		units = append(units, unit{
			section: template.SectionSkills,
			kind:    KindEntry,
			entryID: g.ID,
			lines:   lines,
		})
	}
	return units
}

func buildAchievementUnits(entries []model.Achievement, def template.Definition, width float64) []unit {
	if len(entries) == 0 {
		return nil
	}
	units := []unit{headingUnit(template.SectionAchievements, def, def.Title(template.SectionAchievements), "")}
	for _, a := range entries {
		lines := []Line{}
		appendWrapped(&lines, a.Title, width, RoleTitle)
		appendWrapped(&lines, a.Organization, width, RoleSubtitle)
		appendWrapped(&lines, model.FormatDate(a.Date), width, RoleMeta)
		appendWrapped(&lines, a.Description, width, RoleBody)
		units = append(units, unit{
			section: template.SectionAchievements,
			kind:    KindEntry,
			entryID: a.ID,
			lines:   lines,
		})
	}
	return units
}

func buildCustomUnits(sections []model.CustomSection, def template.Definition, width float64) []unit {
	units := []unit{}
	for _, s := range sections {
		itemUnits := []unit{}
		for _, item := range s.Items {
			lines := []Line{}
			appendWrapped(&lines, item.Title, width, RoleTitle)
			appendWrapped(&lines, item.Subtitle, width, RoleSubtitle)
			appendWrapped(&lines, item.Date, width, RoleMeta)
			appendWrapped(&lines, item.Description, width, RoleBody)
			if len(lines) == 0 {
				continue
			}
			itemUnits = append(itemUnits, unit{
				section: template.SectionCustom,
				kind:    KindEntry,
				entryID: s.ID,
				lines:   lines,
			})
		}
		if len(itemUnits) == 0 {
			continue
		}
		units = append(units, headingUnit(template.SectionCustom, def, s.Title, s.ID))
		units = append(units, itemUnits...)
	}
	return units
}

func appendWrapped(lines *[]Line, text string, width float64, role Role) {
	for _, l := range wrapText(text, width, role) {
		*lines = append(*lines, Line{Role: role, Text: l})
	}
}

// appendBullets wraps each bullet at a reduced width, prefixes the first
// line with the template's marker glyph, and indents continuations.
func appendBullets(lines *[]Line, bullets []string, marker string, width float64) {
	for _, b := range bullets {
		if strings.TrimSpace(b) == "" {
			continue
		}
		wrapped := wrapText(b, width-bulletIndent, RoleBullet)
		for i, l := range wrapped {
			if i == 0 {
				*lines = append(*lines, Line{Role: RoleBullet, Text: marker + " " + l})
				continue
			}
			*lines = append(*lines, Line{Role: RoleBullet, Text: l, Indent: bulletIndent})
		}
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
