package discord

import "maps"

// Keys of an embed field record.
const (
	FieldKeyName   = "name"
	FieldKeyValue  = "value"
	FieldKeyInline = "inline"
)

// EmbedField is a loosely typed field record. Fields built with AddField are
// always well formed; raw records (message files, WithFields) are checked by
// ValidateEmbedFields before a payload is assembled.
type EmbedField map[string]any

// NewEmbedField creates a new embed field
func NewEmbedField(name, value string, inline bool) EmbedField {
	return EmbedField{
		FieldKeyName:   name,
		FieldKeyValue:  value,
		FieldKeyInline: inline,
	}
}

func cloneFields(fields []EmbedField) []EmbedField {
	if fields == nil {
		return nil
	}
	out := make([]EmbedField, len(fields))
	for i, field := range fields {
		out[i] = maps.Clone(field)
	}
	return out
}
