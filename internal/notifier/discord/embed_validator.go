package discord

import (
	"fmt"
	"unicode/utf8"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
)

// Service-side embed limits.
const (
	MaxEmbedTitleLength       = 256
	MaxEmbedDescriptionLength = 4096
	MaxEmbedFields            = 25
	MaxEmbedFieldNameLength   = 256
	MaxEmbedFieldValueLength  = 1024
	MaxEmbedFooterTextLength  = 2048
	MaxEmbedAuthorNameLength  = 256
	MaxEmbedTotalLength       = 6000
)

// EmbedValidator validates embed objects
type EmbedValidator struct{}

// NewEmbedValidator creates a new embed validator
func NewEmbedValidator() *EmbedValidator {
	return &EmbedValidator{}
}

// ValidateEmbedFields checks that every field has string name and value
// members and, when present, a boolean inline member.
func (ev *EmbedValidator) ValidateEmbedFields(fields []EmbedField) error {
	for i, field := range fields {
		name, hasName := field[FieldKeyName]
		value, hasValue := field[FieldKeyValue]
		if !hasName || !hasValue {
			return errorwrapper.NewKindError(errorwrapper.ErrInvalidField, fmt.Sprintf("fields[%d]", i), map[string]any(field),
				"each field must have 'name' and 'value' keys")
		}

		_, nameIsString := name.(string)
		_, valueIsString := value.(string)
		if !nameIsString || !valueIsString {
			return errorwrapper.NewKindError(errorwrapper.ErrInvalidFieldType, fmt.Sprintf("fields[%d]", i), map[string]any(field),
				"the 'name' and 'value' of each field must be strings")
		}

		if inline, ok := field[FieldKeyInline]; ok {
			if _, isBool := inline.(bool); !isBool {
				return errorwrapper.NewKindError(errorwrapper.ErrInvalidFieldType, fmt.Sprintf("fields[%d].inline", i), inline,
					"the 'inline' key, if present, must be a boolean")
			}
		}
	}
	return nil
}

// ValidateLimits checks an embed against the service's length limits. The
// assembler does not call it; the CLI runs it as a pre-flight check.
func (ev *EmbedValidator) ValidateLimits(embed Embed) error {
	if utf8.RuneCountInString(embed.Title) > MaxEmbedTitleLength {
		return errorwrapper.NewValidationError("title", embed.Title, "title cannot exceed 256 characters")
	}

	if utf8.RuneCountInString(embed.Description) > MaxEmbedDescriptionLength {
		return errorwrapper.NewValidationError("description", embed.Description, "description cannot exceed 4096 characters")
	}

	if len(embed.Fields) > MaxEmbedFields {
		return errorwrapper.NewValidationError("fields", len(embed.Fields), "cannot have more than 25 fields")
	}

	for i, field := range embed.Fields {
		name, _ := field[FieldKeyName].(string)
		value, _ := field[FieldKeyValue].(string)
		if utf8.RuneCountInString(name) > MaxEmbedFieldNameLength {
			return errorwrapper.NewValidationError("field_name", name, fmt.Sprintf("field %d name cannot exceed 256 characters", i))
		}
		if utf8.RuneCountInString(value) > MaxEmbedFieldValueLength {
			return errorwrapper.NewValidationError("field_value", value, fmt.Sprintf("field %d value cannot exceed 1024 characters", i))
		}
	}

	if embed.Footer != nil && utf8.RuneCountInString(embed.Footer.Text) > MaxEmbedFooterTextLength {
		return errorwrapper.NewValidationError("footer_text", embed.Footer.Text, "footer text cannot exceed 2048 characters")
	}

	if embed.Author != nil && utf8.RuneCountInString(embed.Author.Name) > MaxEmbedAuthorNameLength {
		return errorwrapper.NewValidationError("author_name", embed.Author.Name, "author name cannot exceed 256 characters")
	}

	if total := embedTextLength(embed); total > MaxEmbedTotalLength {
		return errorwrapper.NewValidationError("embed", total, "embed text cannot exceed 6000 characters in total")
	}

	return nil
}

// embedTextLength counts the characters the service sums for its total
// limit: title, description, field names and values, footer text and author
// name.
func embedTextLength(embed Embed) int {
	total := utf8.RuneCountInString(embed.Title) + utf8.RuneCountInString(embed.Description)
	for _, field := range embed.Fields {
		name, _ := field[FieldKeyName].(string)
		value, _ := field[FieldKeyValue].(string)
		total += utf8.RuneCountInString(name) + utf8.RuneCountInString(value)
	}
	if embed.Footer != nil {
		total += utf8.RuneCountInString(embed.Footer.Text)
	}
	if embed.Author != nil {
		total += utf8.RuneCountInString(embed.Author.Name)
	}
	return total
}

// ValidateEmbedFields validates fields with a default validator.
func ValidateEmbedFields(fields []EmbedField) error {
	return NewEmbedValidator().ValidateEmbedFields(fields)
}
