package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// MinPhoneDigits is the minimum number of digits a phone number must carry.
// The order and contact forms share this threshold.
const MinPhoneDigits = 9

// DateLayout is the calendar date layout used by exam and delivery dates.
const DateLayout = "2006-01-02"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s+()-]+$`)
)

// NotBlank reports whether s has content after trimming whitespace.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Email reports whether s looks like local@domain.tld.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone reports whether s only contains digits, spaces, '+', '-', '(' and ')'
// and carries at least MinPhoneDigits digits.
func Phone(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	return countDigits(s) >= MinPhoneDigits
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// Quantity parses a positive copy count.
func Quantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Date reports whether s is a YYYY-MM-DD calendar date.
func Date(s string) bool {
	_, err := time.Parse(DateLayout, strings.TrimSpace(s))
	return err == nil
}
