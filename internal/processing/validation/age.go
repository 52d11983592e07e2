package validation

import "time"

// ageAt computes age in whole years at the given date. A birthday not yet
// reached this calendar year decrements the naive year difference.
func ageAt(dateOfBirth, today time.Time) int {
	age := today.Year() - dateOfBirth.Year()
	if dateOfBirth.AddDate(age, 0, 0).After(today) {
		age--
	}
	return age
}
