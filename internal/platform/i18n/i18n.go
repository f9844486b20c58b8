// Package i18n holds the locales imagebox ships labels for and resolves
// request languages against them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	KeyImageCaptionDefault = "image.caption.default"
	KeyGalleryTitle        = "gallery.title"
	KeyGalleryEmpty        = "gallery.empty"
)

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

var messages = map[language.Tag]map[string]string{
	language.AmericanEnglish: {
		KeyImageCaptionDefault: "Image",
		KeyGalleryTitle:        "Image components",
		KeyGalleryEmpty:        "This story renders nothing.",
	},
	language.BrazilianPortuguese: {
		KeyImageCaptionDefault: "Imagem",
		KeyGalleryTitle:        "Componentes de imagem",
		KeyGalleryEmpty:        "Esta história não renderiza nada.",
	},
}

func init() {
	for tag, entries := range messages {
		for key, value := range entries {
			if err := message.SetString(tag, key, value); err != nil {
				panic(err)
			}
		}
	}
}

// SupportedTags returns the shipped locales, default first.
func SupportedTags() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// DefaultTag returns the fallback locale.
func DefaultTag() language.Tag {
	return supported[0]
}

// ParseTag parses value and reports whether it matches a shipped locale.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supported[index], true
}

// MatchAcceptLanguage resolves an Accept-Language header value.
func MatchAcceptLanguage(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(strings.TrimSpace(header))
	if err != nil || len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[index]
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// DefaultCaption returns the localized fallback alt text for images.
func DefaultCaption(tag language.Tag) string {
	return Printer(tag).Sprintf(KeyImageCaptionDefault)
}
