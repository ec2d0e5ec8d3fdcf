package export

import "strings"

// Filename derives the suggested download name from the resume title:
// anything outside [A-Za-z0-9] becomes an underscore, the result is
// lowercased, and the pdf extension is appended.
func Filename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	if strings.Trim(name, "_") == "" {
		name = "resume"
	}
	return name + ".pdf"
}
