package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownIDs(t *testing.T) {
	for _, id := range []ID{Modern, Classic, Creative, Executive} {
		def := Resolve(id)
		assert.Equal(t, id, def.ID)
	}
}

func TestResolveUnknownFallsBackToModern(t *testing.T) {
	assert.Equal(t, Modern, Resolve("minimal").ID)
	assert.Equal(t, Modern, Resolve("").ID)
}

func TestColumnFractionsSumToOne(t *testing.T) {
	for _, def := range All() {
		total := 0.0
		for _, col := range def.Columns {
			total += col.WidthFrac
		}
		assert.InDelta(t, 1.0, total, 1e-9, "template %s", def.ID)
	}
}

func TestEveryColumnHasSections(t *testing.T) {
	for _, def := range All() {
		require.NotEmpty(t, def.Columns, "template %s", def.ID)
		for _, col := range def.Columns {
			assert.NotEmpty(t, col.Sections, "template %s", def.ID)
		}
	}
}

func TestSectionTitleFallback(t *testing.T) {
	def := Resolve(Modern)
	assert.Equal(t, "Professional Experience", def.Title(SectionExperience))
	assert.Equal(t, "custom", def.Title(SectionCustom))
}

func TestExactlyOneHeaderPerTemplate(t *testing.T) {
	for _, def := range All() {
		count := 0
		for _, col := range def.Columns {
			for _, s := range col.Sections {
				if s == SectionHeader {
					count++
				}
			}
		}
		assert.Equal(t, 1, count, "template %s", def.ID)
	}
}
