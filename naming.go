package ggart

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slug converts a title into a file-name friendly identifier: lower case
// with every run of non-alphanumeric characters replaced by one underscore.
//
//	Slug("ROTATION IN RED AND BLACK") == "rotation_in_red_and_black"
func Slug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range cases.Lower(language.Und).String(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// DisplayName turns a slug or file name back into a readable title.
//
//	DisplayName("basic-canopy-fractal-1") == "Basic Canopy Fractal 1"
func DisplayName(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, s)
	return cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
}
