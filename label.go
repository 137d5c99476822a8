package colourvis

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// latexMarkup matches the LaTeX markup runes stripped from labels.
var latexMarkup = runes.Predicate(func(r rune) bool {
	switch r {
	case '$', '^', '_', '{', '}':
		return true
	}
	return false
})

// Unlatexify removes the LaTeX markup characters $ ^ _ { } from text,
// keeping every other rune in order: "J_{za}z_{bz}" becomes "Jzazbz".
func Unlatexify(text string) string {
	s, _, err := transform.String(runes.Remove(latexMarkup), text)
	if err != nil {
		return text
	}
	return s
}
