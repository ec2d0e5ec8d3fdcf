package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResumeDataCanonical(t *testing.T) {
	raw := `{
		"personalInfo": {"fullName": "Ada Lovelace", "email": "ada@example.com", "phone": "555", "location": "London"},
		"skills": [{"id": "skills-1", "category": "Languages", "items": [{"name": "Go", "level": "Expert"}]}],
		"theme": {"fontFamily": "roboto", "primaryColor": "#111111", "headingSize": "lg", "template": "classic"}
	}`

	data, err := DecodeResumeData([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", data.PersonalInfo.FullName)
	require.Len(t, data.Skills, 1)
	assert.Equal(t, "Languages", data.Skills[0].Category)
	require.Len(t, data.Skills[0].Items, 1)
	assert.Equal(t, LevelExpert, data.Skills[0].Items[0].Level)
	assert.Equal(t, "classic", data.Theme.Template)
}

func TestDecodeResumeDataLegacySkills(t *testing.T) {
	raw := `{
		"personalInfo": {"fullName": "Ada"},
		"skills": [
			{"name": "Go", "category": "languages", "level": 5},
			{"name": "SQL", "category": "databases", "level": 3},
			{"name": "Rust", "category": "languages", "level": 1},
			{"name": "Bash", "level": 4}
		]
	}`

	data, err := DecodeResumeData([]byte(raw))
	require.NoError(t, err)

	// groups keep first-appearance order of their category
	require.Len(t, data.Skills, 3)
	assert.Equal(t, "Languages", data.Skills[0].Category)
	assert.Equal(t, "skills-languages", data.Skills[0].ID)
	assert.Equal(t, "Databases", data.Skills[1].Category)
	assert.Equal(t, "Other", data.Skills[2].Category)

	require.Len(t, data.Skills[0].Items, 2)
	assert.Equal(t, "Go", data.Skills[0].Items[0].Name)
	assert.Equal(t, LevelExpert, data.Skills[0].Items[0].Level)
	assert.Equal(t, LevelBeginner, data.Skills[0].Items[1].Level)
	assert.Equal(t, LevelIntermediate, data.Skills[1].Items[0].Level)
	assert.Equal(t, LevelAdvanced, data.Skills[2].Items[0].Level)
}

func TestDecodeResumeDataLegacySkillsDeterministicIDs(t *testing.T) {
	raw := `{"skills": [{"name": "Go", "category": "languages", "level": 5}]}`

	first, err := DecodeResumeData([]byte(raw))
	require.NoError(t, err)
	second, err := DecodeResumeData([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, first.Skills[0].ID, second.Skills[0].ID)
}

func TestDecodeResumeDataLegacyCustomSections(t *testing.T) {
	raw := `{
		"customSections": [
			{"id": "cs-1", "title": "Projects", "type": "list", "content": "Assorted open source work.", "items": ["parser", "linter"]}
		]
	}`

	data, err := DecodeResumeData([]byte(raw))
	require.NoError(t, err)

	require.Len(t, data.CustomSections, 1)
	s := data.CustomSections[0]
	assert.Equal(t, "cs-1", s.ID)
	assert.Equal(t, "Projects", s.Title)
	require.Len(t, s.Items, 3)
	assert.Equal(t, "Assorted open source work.", s.Items[0].Description)
	assert.Equal(t, "parser", s.Items[1].Title)
	assert.Equal(t, "linter", s.Items[2].Title)
}

func TestDecodeResumeDataThemeDefaults(t *testing.T) {
	data, err := DecodeResumeData([]byte(`{"theme": {"primaryColor": "#ff0000"}}`))
	require.NoError(t, err)

	assert.Equal(t, "#ff0000", data.Theme.PrimaryColor)
	assert.Equal(t, "inter", data.Theme.FontFamily)
	assert.Equal(t, "md", data.Theme.HeadingSize)
	assert.Equal(t, "modern", data.Theme.Template)
}

func TestDecodeResumeDataInvalidJSON(t *testing.T) {
	_, err := DecodeResumeData([]byte(`{not json`))
	assert.Error(t, err)
}
