package personalcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-decision-engine/internal/models"
)

func TestIsValid_AcceptsWellFormedCodes(t *testing.T) {
	codes := []string{
		"49001010001", // female, born 1990-01-01
		"49001012507",
		"37001012502", // male, born 1970-01-01
		"50607012505", // male, born 2006-07-01
		"34406012500", // male, born 1944-06-01
	}

	for _, code := range codes {
		assert.True(t, IsValid(code), "expected %s to be valid", code)
	}
}

func TestIsValid_RejectsMalformedCodes(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"too short", "4900101250"},
		{"too long", "490010125077"},
		{"non-digit characters", "4900101250a"},
		{"wrong checksum", "49001012508"},
		{"century digit zero", "09001012507"},
		{"century digit out of range", "79001012501"},
		{"month 13", "49131012507"},
		{"day 32", "49013212507"},
		{"february 30", "49023012507"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsValid(tt.code))
		})
	}
}

func TestBirthDate_CenturyMapping(t *testing.T) {
	tests := []struct {
		code string
		want time.Time
	}{
		// century 3/4 resolve to the 1900s, 5/6 to the 2000s
		{"37001012502", time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"49001012507", time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"50607012505", time.Date(2006, time.July, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := BirthDate(tt.code)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "code %s", tt.code)
	}
}

func TestBirthDate_ImpossibleDate(t *testing.T) {
	_, err := BirthDate("49131012507")
	assert.ErrorIs(t, err, models.ErrInvalidPersonalCode)

	_, err = BirthDate("49023012507")
	assert.ErrorIs(t, err, models.ErrInvalidPersonalCode)
}

func TestAge_WholeYears(t *testing.T) {
	at := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	age, err := Age("49001010001", at) // born 1990-01-01
	require.NoError(t, err)
	assert.Equal(t, 34, age)

	age, err = Age("50607012505", at) // born 2006-07-01, birthday pending
	require.NoError(t, err)
	assert.Equal(t, 17, age)
}

func TestAge_BirthdayBoundary(t *testing.T) {
	// Born 2006-07-01: still 17 the day before, 18 on the birthday itself.
	dayBefore := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	birthday := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	age, err := Age("50607012505", dayBefore)
	require.NoError(t, err)
	assert.Equal(t, 17, age)

	age, err = Age("50607012505", birthday)
	require.NoError(t, err)
	assert.Equal(t, 18, age)
}
