package model

import "strings"

// PlainText flattens the resume content into a single text blob for
// keyword-level analysis against a job description. Formatting is not
// preserved; section order follows the data, not any template.
func (d *ResumeData) PlainText() string {
	var b strings.Builder
	write := func(parts ...string) {
		for _, p := range parts {
			if p == "" {
				continue
			}
			b.WriteString(p)
			b.WriteByte('\n')
		}
	}

	p := d.PersonalInfo
	write(p.FullName, p.Email, p.Phone, p.Location, p.Website, p.LinkedIn, p.GitHub, p.Summary)

	for _, exp := range d.Experience {
		write(exp.JobTitle, exp.Company, exp.Location, exp.Description)
		write(exp.Achievements...)
	}
	for _, edu := range d.Education {
		write(edu.Degree, edu.Institution, edu.FieldOfStudy, edu.Description)
		write(edu.Achievements...)
	}
	for _, group := range d.Skills {
		write(group.Category)
		for _, item := range group.Items {
			write(item.Name)
		}
	}
	for _, a := range d.Achievements {
		write(a.Title, a.Organization, a.Description)
	}
	for _, s := range d.CustomSections {
		write(s.Title)
		for _, item := range s.Items {
			write(item.Title, item.Subtitle, item.Description)
		}
	}
	return b.String()
}
