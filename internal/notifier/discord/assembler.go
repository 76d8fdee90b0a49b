package discord

import (
	"fmt"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
)

// MaxEmbeds is the number of embeds a single message may carry. Extra
// embeds are dropped.
const MaxEmbeds = 10

// ExecuteParams is everything a single webhook execution may carry.
type ExecuteParams struct {
	Content         string
	Embeds          []*EmbedBuilder
	Components      *ComponentsBuilder
	Poll            *PollBuilder
	Username        string
	AvatarURL       string
	TTS             bool
	AllowedMentions *AllowedMentionsBuilder
	Wait            bool         // Ask the service to return the created message
	Files           []Attachment // Sent as multipart/form-data when present
}

// Assembler turns builders into a validated MessagePayload. It only reads
// from the builders it is given.
type Assembler struct {
	validator                *EmbedValidator
	serializeAllowedMentions bool
}

// NewAssembler creates an assembler that, like the webhook it serves, accepts
// allowed mentions without serializing them.
func NewAssembler() *Assembler {
	return &Assembler{validator: NewEmbedValidator()}
}

// WithAllowedMentions controls whether non-empty allowed mentions are written
// to the payload.
func (a *Assembler) WithAllowedMentions(serialize bool) *Assembler {
	a.serializeAllowedMentions = serialize
	return a
}

// Assemble builds the payload for params. Any invalid embed field fails the
// whole call and no payload is returned.
func (a *Assembler) Assemble(params ExecuteParams) (*MessagePayload, error) {
	embedBuilders := params.Embeds
	if len(embedBuilders) > MaxEmbeds {
		embedBuilders = embedBuilders[:MaxEmbeds]
	}

	embeds := make([]Embed, 0, len(embedBuilders))
	for i, builder := range embedBuilders {
		if builder == nil {
			return nil, errorwrapper.NewValidationError(fmt.Sprintf("embeds[%d]", i), nil, "embed builder is nil")
		}
		embed := builder.ToPayload()
		if err := a.validator.ValidateEmbedFields(embed.Fields); err != nil {
			return nil, errorwrapper.WrapError(err, fmt.Sprintf("embeds[%d]", i))
		}
		embeds = append(embeds, embed)
	}

	components := []Component{}
	if params.Components != nil {
		components = params.Components.GetComponents()
	}

	var poll *Poll
	if params.Poll != nil {
		payload := params.Poll.ToPayload()
		poll = &payload
	}

	payload := &MessagePayload{
		Embeds:     embeds,
		Components: components,
		Poll:       poll,
		TTS:        params.TTS,
		Username:   params.Username,
		AvatarURL:  params.AvatarURL,
	}
	if params.Content != "" {
		content := params.Content
		payload.Content = &content
	}

	if a.serializeAllowedMentions && params.AllowedMentions != nil {
		if mentions := params.AllowedMentions.ToPayload(); !mentions.IsEmpty() {
			payload.AllowedMentions = &mentions
		}
	}

	return payload, nil
}
