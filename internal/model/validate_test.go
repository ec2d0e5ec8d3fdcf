package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validData() *ResumeData {
	d := NewResumeData()
	d.PersonalInfo = PersonalInfo{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "555-0100",
		Location: "London",
	}
	return d
}

func TestValidateOK(t *testing.T) {
	require.NoError(t, Validate(validData()))
}

func TestValidateMissingRequiredField(t *testing.T) {
	d := validData()
	d.PersonalInfo.FullName = ""
	err := Validate(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fullName")
}

func TestValidateBadThemeColor(t *testing.T) {
	d := validData()
	d.Theme.PrimaryColor = "blue"
	assert.Error(t, Validate(d))
}

func TestValidateBadSkillLevel(t *testing.T) {
	d := validData()
	d.Skills = []SkillGroup{{
		ID:       "skills-1",
		Category: "Languages",
		Items:    []SkillItem{{Name: "Go", Level: "Wizard"}},
	}}
	assert.Error(t, Validate(d))
}
