package prompt

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageName returns the English display name for a configured target
// language. BCP 47 tags such as "es" or "pt-BR" are expanded ("Spanish",
// "Brazilian Portuguese"); anything that is not a known tag, including plain
// names like "Russian", is returned trimmed but otherwise unchanged.
func LanguageName(configured string) string {
	configured = strings.TrimSpace(configured)
	tag, err := language.Parse(configured)
	if err != nil || tag == language.Und {
		return configured
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return configured
}
