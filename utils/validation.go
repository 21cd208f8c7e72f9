// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phonePattern.MatchString(cleaned)
}

// ValidateDate checks for an ISO calendar date (YYYY-MM-DD)
func ValidateDate(date string) bool {
	match, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, date)
	return match
}

// ValidateTime checks for a 24-hour clock time (HH:MM)
func ValidateTime(t string) bool {
	match, _ := regexp.MatchString(`^([01]\d|2[0-3]):[0-5]\d$`, t)
	return match
}
