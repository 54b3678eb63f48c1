package translate

import (
	"log"
	"os"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("a64x: locale: %v", err)
	}

	// A64X_LANG overrides the system locale, mainly for reproducing
	// diagnostics in bug reports.
	if lang := os.Getenv("A64X_LANG"); len(lang) != 0 {
		locales = []string{lang}
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
