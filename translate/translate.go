// Package translate formats the user visible messages of the SimpleLang
// machine for the locale of the current user.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

var tag language.Tag

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("simplelang: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the printer matching the first supported locale.
// With no locales, en-US is used.
func Use(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)
}

// Language returns the language tag of the active printer.
func Language() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
