package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Resume", "my_resume.pdf"},
		{"Backend Engineer (2024)", "backend_engineer__2024_.pdf"},
		{"Résumé", "r_sum_.pdf"},
		{"", "resume.pdf"},
		{"!!!", "resume.pdf"},
		{"already_fine", "already_fine.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.in), "title %q", tt.in)
	}
}
