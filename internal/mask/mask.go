// Package mask hides password characters before they appear in reports or
// verbose output. The raw password is never printed.
package mask

import "strings"

// Mask returns the password with its middle characters replaced by '*'.
// Passwords shorter than four characters are fully starred.
func Mask(password string) string {
	runes := []rune(password)
	if len(runes) < 4 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
}
