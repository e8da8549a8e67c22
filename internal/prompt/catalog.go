// Package prompt renders the instruction templates sent to the language model.
// Templates live in an embedded go-i18n message catalog (TOML) so prompt wording
// can change without touching the pipeline code.
package prompt

import (
	"embed"
	"errors"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/phrazzld/factqa/internal/domain"
)

//go:embed prompts/active.*.toml
var catalogFS embed.FS

// Message IDs in the catalog.
const (
	MessageFactToQuestion = "FactToQuestion"
	MessageTranslatePair  = "TranslatePair"
)

// ErrEmptyInput is returned when a template would be rendered without content.
var ErrEmptyInput = errors.New("prompt input cannot be empty")

// Catalog renders prompts from the embedded message files.
type Catalog struct {
	localizer *i18n.Localizer
}

// NewCatalog loads the embedded prompt catalog.
func NewCatalog() (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if _, err := bundle.LoadMessageFileFS(catalogFS, "prompts/active.en.toml"); err != nil {
		return nil, fmt.Errorf("failed to load prompt catalog: %w", err)
	}

	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, language.English.String()),
	}, nil
}

// FactToQuestion renders the instruction asking the model to turn fact into a
// single open question.
func (c *Catalog) FactToQuestion(fact domain.Fact) (string, error) {
	if fact == "" {
		return "", ErrEmptyInput
	}
	return c.render(MessageFactToQuestion, map[string]any{
		"Fact": fact.String(),
	})
}

// TranslatePair renders the instruction asking the model to translate a
// question/answer pair into the named target language.
func (c *Catalog) TranslatePair(question, answer, targetLanguage string) (string, error) {
	if question == "" || answer == "" || targetLanguage == "" {
		return "", ErrEmptyInput
	}
	return c.render(MessageTranslatePair, map[string]any{
		"Question": question,
		"Answer":   answer,
		"Language": targetLanguage,
	})
}

func (c *Catalog) render(id string, data map[string]any) (string, error) {
	out, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render prompt %s: %w", id, err)
	}
	return out, nil
}
