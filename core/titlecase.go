package core

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest, so "american beech" becomes "American Beech".
// Caser values are not safe for concurrent use; one is built per call.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
