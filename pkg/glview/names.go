package glview

import (
	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/BrandonKowalski/glview/pkg/glview/internal"
	"golang.org/x/text/language"
)

// KeyName returns the display name of a keyboard key in the given language
// (a BCP 47 tag such as "en" or "es-MX"). Unknown languages fall back to English.
func KeyName(code constants.KeyCode, lang string) string {
	return internal.KeyName(code, lang)
}

// ControllerKeyName returns the display name of a controller key.
func ControllerKeyName(key constants.ControllerKey, lang string) string {
	return internal.ControllerKeyName(key, lang)
}

// ControllerKeyLabel returns the two-letter overlay label of a controller
// button, such as "A" or "DU", or "" when the key has none.
func ControllerKeyLabel(key constants.ControllerKey) string {
	return internal.ControllerKeyLabel(key)
}

// SupportedLanguages returns the languages key names are translated into.
func SupportedLanguages() []language.Tag {
	return internal.SupportedLanguages()
}
