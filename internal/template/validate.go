package template

import (
	"fmt"
	"regexp"

	"github.com/alexanderramin/journeyviz/internal/domain"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Validate checks a template's structure. When stages is non-empty every
// card must name one of them.
func (t *Template) Validate(stages []domain.Stage) error {
	return validation.ValidateStruct(t,
		validation.Field(&t.ID, validation.Required, validation.Match(idPattern).Error("must be lowercase letters, digits and dashes")),
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Cards, validation.Required, validation.Each(validation.By(cardRule(stages)))),
	)
}

func cardRule(stages []domain.Stage) validation.RuleFunc {
	return func(value interface{}) error {
		c, ok := value.(CardSpec)
		if !ok {
			return fmt.Errorf("unexpected card type %T", value)
		}
		return validation.ValidateStruct(&c,
			validation.Field(&c.Stage, validation.Required, validation.By(knownStage(stages))),
			validation.Field(&c.Touchpoint, validation.Required),
			validation.Field(&c.Row, validation.Min(0)),
		)
	}
}

func knownStage(stages []domain.Stage) validation.RuleFunc {
	return func(value interface{}) error {
		name, _ := value.(string)
		if len(stages) == 0 || name == "" {
			return nil
		}
		if domain.StageIndex(stages, name) < 0 {
			return fmt.Errorf("unknown stage %q", name)
		}
		return nil
	}
}
