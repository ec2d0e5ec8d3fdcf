package model

import "fmt"

// Reorder operations are pure permutations: they never change cardinality or
// ids, only display order. A request that drops, duplicates or invents an id
// is rejected wholesale.

func reorderByID[T any](items []T, id func(T) string, order []string) ([]T, error) {
	if len(order) != len(items) {
		return nil, fmt.Errorf("reorder: got %d ids for %d entries", len(order), len(items))
	}
	byID := make(map[string]T, len(items))
	for _, it := range items {
		byID[id(it)] = it
	}
	out := make([]T, 0, len(items))
	seen := make(map[string]bool, len(order))
	for _, want := range order {
		if seen[want] {
			return nil, fmt.Errorf("reorder: duplicate id %q", want)
		}
		it, ok := byID[want]
		if !ok {
			return nil, fmt.Errorf("reorder: unknown id %q", want)
		}
		seen[want] = true
		out = append(out, it)
	}
	return out, nil
}

func (d *ResumeData) ReorderEducation(order []string) error {
	out, err := reorderByID(d.Education, func(e Education) string { return e.ID }, order)
	if err != nil {
		return err
	}
	d.Education = out
	return nil
}

func (d *ResumeData) ReorderExperience(order []string) error {
	out, err := reorderByID(d.Experience, func(e Experience) string { return e.ID }, order)
	if err != nil {
		return err
	}
	d.Experience = out
	return nil
}

func (d *ResumeData) ReorderSkills(order []string) error {
	out, err := reorderByID(d.Skills, func(g SkillGroup) string { return g.ID }, order)
	if err != nil {
		return err
	}
	d.Skills = out
	return nil
}

func (d *ResumeData) ReorderAchievements(order []string) error {
	out, err := reorderByID(d.Achievements, func(a Achievement) string { return a.ID }, order)
	if err != nil {
		return err
	}
	d.Achievements = out
	return nil
}

func (d *ResumeData) ReorderCustomSections(order []string) error {
	out, err := reorderByID(d.CustomSections, func(s CustomSection) string { return s.ID }, order)
	if err != nil {
		return err
	}
	d.CustomSections = out
	return nil
}
