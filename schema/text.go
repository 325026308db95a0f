package schema

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// xmlTextTag names the rule rejecting text that XML 1.0 cannot carry.
const xmlTextTag = "xmltext"

// ValidText reports whether s is valid UTF-8 made only of characters allowed by
// the XML 1.0 Char production. Anything else would be rewritten on serialization.
func ValidText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return false
		}
	}
	return true
}

func isXMLChar(r rune) bool {
	switch {
	case r == 0x9, r == 0xA, r == 0xD:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

func validXMLText(fl validator.FieldLevel) bool {
	return ValidText(fl.Field().String())
}
