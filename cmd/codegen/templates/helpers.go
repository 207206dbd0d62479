package templates

import "strings"

// CellKind describes one typed wrapper to emit. Exactly one of the
// class flags may be set; a kind with none gets accessors only.
type CellKind struct {
	Name    string
	Type    string
	Integer bool
	Float   bool
	Bool    bool
	Text    bool
}

func article(word string) string {
	if word == "" {
		return "a"
	}
	if strings.ContainsRune("AEIOU", rune(word[0])) {
		return "an"
	}
	return "a"
}
