// Package personalcode validates Estonian personal identification codes and
// extracts the birth date encoded in them.
//
// A personal code is 11 digits: century/sex digit, birth year (2 digits),
// birth month, birth day, a 3-digit serial number and a checksum digit
// computed with the national two-pass modulo 11 algorithm.
package personalcode

import (
	"time"

	"loan-decision-engine/internal/models"
)

// Checksum weights for the first and second pass.
var (
	weightsFirstPass  = [10]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1}
	weightsSecondPass = [10]int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
)

// IsValid reports whether code is a structurally valid Estonian personal
// code: 11 digits, a known century digit, a real calendar birth date and a
// matching checksum digit.
func IsValid(code string) bool {
	if len(code) != 11 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}

	century := int(code[0] - '0')
	if century < 1 || century > 6 {
		return false
	}

	year := fullBirthYear(century, digits(code, 1, 3))
	month := digits(code, 3, 5)
	day := digits(code, 5, 7)
	if !isRealDate(year, month, day) {
		return false
	}

	return checksumDigit(code) == int(code[10]-'0')
}

// BirthDate extracts the birth date encoded in a personal code. The code is
// expected to have passed IsValid; a code that encodes an impossible
// calendar date yields ErrInvalidPersonalCode.
func BirthDate(code string) (time.Time, error) {
	if len(code) != 11 {
		return time.Time{}, models.ErrInvalidPersonalCode
	}

	year := fullBirthYear(int(code[0]-'0'), digits(code, 1, 3))
	month := digits(code, 3, 5)
	day := digits(code, 5, 7)
	if !isRealDate(year, month, day) {
		return time.Time{}, models.ErrInvalidPersonalCode
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// Age returns the applicant's age in whole years at the given moment.
func Age(code string, at time.Time) (int, error) {
	birth, err := BirthDate(code)
	if err != nil {
		return 0, err
	}

	years := at.Year() - birth.Year()
	// Subtract a year if the birthday has not happened yet this year.
	if at.Month() < birth.Month() ||
		(at.Month() == birth.Month() && at.Day() < birth.Day()) {
		years--
	}
	return years, nil
}

// fullBirthYear resolves the two-digit birth year against the century digit.
// Centuries 3 and 4 are births in the 1900s, everything else maps to the
// 2000s.
func fullBirthYear(century, shortYear int) int {
	if century == 3 || century == 4 {
		return 1900 + shortYear
	}
	return 2000 + shortYear
}

// isRealDate reports whether year/month/day name an existing calendar date.
// time.Date normalizes overflow (Feb 30 becomes Mar 1/2), so a round-trip
// comparison catches impossible dates.
func isRealDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.Year() == year && int(d.Month()) == month && d.Day() == day
}

// digits parses code[from:to] as a decimal number. The caller guarantees the
// slice holds only ASCII digits.
func digits(code string, from, to int) int {
	n := 0
	for i := from; i < to; i++ {
		n = n*10 + int(code[i]-'0')
	}
	return n
}

// checksumDigit computes the national checksum for the first ten digits.
// The first weight pass uses 1..9,1; if the remainder is 10 the second pass
// uses 3..9,1,2,3; a second remainder of 10 collapses to 0.
func checksumDigit(code string) int {
	sum := 0
	for i := 0; i < 10; i++ {
		sum += int(code[i]-'0') * weightsFirstPass[i]
	}
	if rem := sum % 11; rem < 10 {
		return rem
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(code[i]-'0') * weightsSecondPass[i]
	}
	if rem := sum % 11; rem < 10 {
		return rem
	}
	return 0
}
