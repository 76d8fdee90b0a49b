package discord

import "encoding/json"

// MessagePayload represents the JSON payload sent to a webhook.
//
// content, embeds, components, poll and tts are always present; username,
// avatar_url and allowed_mentions only when set.
type MessagePayload struct {
	Content         *string          `json:"content"`              // Message content, null when empty
	Embeds          []Embed          `json:"embeds"`               // At most MaxEmbeds embed objects
	Components      []Component      `json:"components"`           // Top-level components list
	Poll            *Poll            `json:"poll"`                 // Serialized as {} when nil
	TTS             bool             `json:"tts"`                  // Text-to-speech message
	Username        string           `json:"username,omitempty"`   // Override the default webhook username
	AvatarURL       string           `json:"avatar_url,omitempty"` // Override the default webhook avatar
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
}

// MarshalJSON writes an absent poll as an empty object and absent lists as
// empty arrays.
func (p MessagePayload) MarshalJSON() ([]byte, error) {
	type alias MessagePayload

	var poll any = struct{}{}
	if p.Poll != nil {
		poll = p.Poll
	}

	out := alias(p)
	if out.Embeds == nil {
		out.Embeds = []Embed{}
	}
	if out.Components == nil {
		out.Components = []Component{}
	}

	return json.Marshal(struct {
		alias
		Poll any `json:"poll"`
	}{alias: out, Poll: poll})
}
