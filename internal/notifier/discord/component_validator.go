package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
	"github.com/go-playground/validator/v10"
)

var componentValidate = validator.New()

// Validate checks every component against its invariants: button styles in
// [1, 5], custom ids on non-link buttons, URLs on link buttons and
// min_values <= max_values on select menus. Builders never call it
// implicitly.
func (cb *ComponentsBuilder) Validate() error {
	for i, component := range cb.components {
		if err := validateComponent(component, fmt.Sprintf("components[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateComponent(component Component, path string) error {
	switch c := component.(type) {
	case ActionRow:
		for i, child := range c.Components {
			if _, nested := child.(ActionRow); nested {
				return errorwrapper.NewKindError(errorwrapper.ErrInvalidComponent, fmt.Sprintf("%s.components[%d]", path, i), child,
					"action rows cannot be nested")
			}
			if err := validateComponent(child, fmt.Sprintf("%s.components[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	case Button, SelectMenu:
		return structError(componentValidate.Struct(c), path, c)
	default:
		return errorwrapper.NewKindError(errorwrapper.ErrInvalidComponent, path, component, "unknown component type")
	}
}

func structError(err error, path string, value any) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return errorwrapper.NewKindError(errorwrapper.ErrInvalidComponent, path, value, err.Error())
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := fmt.Sprintf("'%s' failed rule '%s'", e.Field(), e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (%s)", e.Param())
		}
		messages = append(messages, msg)
	}
	return errorwrapper.NewKindError(errorwrapper.ErrInvalidComponent, path, value, strings.Join(messages, "; "))
}
