package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"year and month", "2022-01", "Jan 2022"},
		{"full date", "2022-03-15", "Mar 2022"},
		{"year only", "2019", "Jan 2019"},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
		{"garbage", "not-a-date", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "Jan 2020 - Mar 2022", DateRange("2020-01", "2022-03", false))
	assert.Equal(t, "Jan 2020 - Present", DateRange("2020-01", "", true))
	// a current role always reads Present even with a stored end date
	assert.Equal(t, "Jan 2020 - Present", DateRange("2020-01", "2022-03", true))
	assert.Equal(t, "Jan 2020", DateRange("2020-01", "", false))
	assert.Equal(t, "Mar 2022", DateRange("", "2022-03", false))
	assert.Equal(t, "", DateRange("", "", false))
	assert.Equal(t, "Present", DateRange("", "", true))
}
