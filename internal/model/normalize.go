package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeResumeData unmarshals a persisted resume payload, migrating legacy
// shapes to the canonical schema before decoding into typed structs. Two
// legacy variants exist in stored records:
//
//   - skills as a flat list of {name, category, level: 1-5} instead of
//     grouped {category, items: [{name, level: enum}]}
//   - custom sections as {content, type, items: []string} instead of the
//     itemized {title, items: [{title, subtitle, date, description}]}
//
// The migration is one-way: the layout engine only ever sees the canonical
// shape.
func DecodeResumeData(b []byte) (*ResumeData, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decoding resume data: %w", err)
	}
	normalizeSkills(raw)
	normalizeCustomSections(raw)

	canonical, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	data := NewResumeData()
	if err := json.Unmarshal(canonical, data); err != nil {
		return nil, fmt.Errorf("decoding resume data: %w", err)
	}
	applyThemeDefaults(&data.Theme)
	return data, nil
}

func applyThemeDefaults(t *ResumeTheme) {
	def := DefaultTheme()
	if t.FontFamily == "" {
		t.FontFamily = def.FontFamily
	}
	if t.PrimaryColor == "" {
		t.PrimaryColor = def.PrimaryColor
	}
	if t.HeadingSize == "" {
		t.HeadingSize = def.HeadingSize
	}
	if t.Template == "" {
		t.Template = def.Template
	}
}

// normalizeSkills rewrites the flat legacy skill list into grouped form.
// Groups keep the order in which their category first appears and get a
// deterministic id minted from the category so repeated decodes of the same
// record agree.
func normalizeSkills(raw map[string]interface{}) {
	arr, ok := raw["skills"].([]interface{})
	if !ok || len(arr) == 0 {
		return
	}
	first, ok := arr[0].(map[string]interface{})
	if !ok {
		return
	}
	if _, grouped := first["items"]; grouped {
		return
	}

	order := []string{}
	groups := map[string][]interface{}{}
	for _, it := range arr {
		m, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		category := "other"
		if c, ok := m["category"].(string); ok && c != "" {
			category = c
		}
		if _, seen := groups[category]; !seen {
			order = append(order, category)
		}
		item := map[string]interface{}{}
		if n, ok := m["name"].(string); ok {
			item["name"] = n
		}
		if lvl, ok := m["level"]; ok {
			item["level"] = string(levelFromNumeric(lvl))
		}
		groups[category] = append(groups[category], item)
	}

	out := make([]interface{}, 0, len(order))
	for _, category := range order {
		out = append(out, map[string]interface{}{
			"id":       "skills-" + slugify(category),
			"category": titleCase(category),
			"items":    groups[category],
		})
	}
	raw["skills"] = out
}

// levelFromNumeric maps the legacy 1-5 proficiency onto the canonical enum.
// Enum values already in place pass through untouched.
func levelFromNumeric(v interface{}) SkillLevel {
	switch t := v.(type) {
	case string:
		return SkillLevel(t)
	case float64:
		switch {
		case t <= 1:
			return LevelBeginner
		case t <= 3:
			return LevelIntermediate
		case t <= 4:
			return LevelAdvanced
		default:
			return LevelExpert
		}
	}
	return LevelIntermediate
}

// normalizeCustomSections rewrites the flat text/list legacy shape into the
// itemized form: content becomes a single description-only item, flat string
// items become title-only items.
func normalizeCustomSections(raw map[string]interface{}) {
	arr, ok := raw["customSections"].([]interface{})
	if !ok {
		return
	}
	for i, it := range arr {
		m, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		_, hasContent := m["content"]
		_, hasType := m["type"]
		if !hasContent && !hasType {
			continue
		}

		items := []interface{}{}
		if content, ok := m["content"].(string); ok && strings.TrimSpace(content) != "" {
			items = append(items, map[string]interface{}{"description": content})
		}
		if legacy, ok := m["items"].([]interface{}); ok {
			for _, li := range legacy {
				if s, ok := li.(string); ok && s != "" {
					items = append(items, map[string]interface{}{"title": s})
				}
			}
		}
		arr[i] = map[string]interface{}{
			"id":    m["id"],
			"title": m["title"],
			"items": items,
		}
	}
	raw["customSections"] = arr
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return b.String()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
