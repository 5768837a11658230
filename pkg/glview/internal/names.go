package internal

import (
	"embed"
	"strings"
	"sync"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	localizersMu sync.Mutex
	localizers   = map[string]*i18n.Localizer{}
)

func nameBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			GetInternalLogger().Error("Failed to list embedded locales", "error", err)
			return
		}
		for _, e := range entries {
			if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+e.Name()); err != nil {
				GetInternalLogger().Error("Failed to load locale", "file", e.Name(), "error", err)
			}
		}
	})
	return bundle
}

func localizer(lang string) *i18n.Localizer {
	localizersMu.Lock()
	defer localizersMu.Unlock()

	if l, ok := localizers[lang]; ok {
		return l
	}
	l := i18n.NewLocalizer(nameBundle(), lang)
	localizers[lang] = l
	return l
}

// SupportedLanguages returns the languages with an embedded message file.
func SupportedLanguages() []language.Tag {
	return nameBundle().LanguageTags()
}

// localize returns the message id in lang, or fallback when no catalog has it.
func localize(lang, id, fallback string) string {
	msg, err := localizer(lang).Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if msg == "" {
		if err != nil {
			GetInternalLogger().Debug("Missing key name", "id", id, "lang", lang, "error", err)
		}
		return fallback
	}
	return msg
}

// humanize turns a snake_case identifier into title-cased words.
func humanize(name string, lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return cases.Title(tag).String(strings.ReplaceAll(name, "_", " "))
}

// KeyName returns the display name of a keyboard key in lang.
func KeyName(code constants.KeyCode, lang string) string {
	name := code.String()
	return localize(lang, "key_"+name, humanize(name, lang))
}

// ControllerKeyName returns the display name of a controller key in lang.
func ControllerKeyName(key constants.ControllerKey, lang string) string {
	name := key.String()
	return localize(lang, "controller_"+name, humanize(name, lang))
}

// ControllerKeyLabel returns the two-letter overlay label of a button, or
// an empty string for keys without one.
func ControllerKeyLabel(key constants.ControllerKey) string {
	return localize(language.English.String(), "controller_label_"+key.String(), "")
}
