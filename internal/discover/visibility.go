package discover

import (
	"unicode"
	"unicode/utf8"

	"dispatcher-generator/internal/model"
)

// visibilityOf maps Go's two-level export model onto the visibility enum:
// exported identifiers are public, unexported ones are package-private.
func visibilityOf(name string) model.Visibility {
	r, _ := utf8.DecodeRuneInString(name)
	if unicode.IsUpper(r) {
		return model.VisibilityPublic
	}

	return model.VisibilityPackage
}
