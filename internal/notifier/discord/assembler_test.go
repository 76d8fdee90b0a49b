package discord

import (
	"testing"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTitledEmbed(t *testing.T, title string) *EmbedBuilder {
	t.Helper()
	builder, err := NewEmbedBuilder(WithTitle(title))
	require.NoError(t, err)
	return builder
}

func TestAssembler_ContentOnly(t *testing.T) {
	payload, err := NewAssembler().Assemble(ExecuteParams{Content: "hello"})
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"content":"hello","embeds":[],"components":[],"poll":{},"tts":false}`,
		mustJSON(t, payload))
}

func TestAssembler_EmptyMessage(t *testing.T) {
	payload, err := NewAssembler().Assemble(ExecuteParams{})
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"content":null,"embeds":[],"components":[],"poll":{},"tts":false}`,
		mustJSON(t, payload))
}

func TestAssembler_FullMessage(t *testing.T) {
	embed := newTitledEmbed(t, "Report")
	embed.AddField("Status", "ok", true)

	payload, err := NewAssembler().Assemble(ExecuteParams{
		Content:    "see below",
		Embeds:     []*EmbedBuilder{embed},
		Components: NewComponentsBuilder().AddButton("Ack", "ack"),
		Poll:       NewPollBuilder("Good?", "yes", "no"),
		Username:   "bot",
		AvatarURL:  "https://example.com/a.png",
		TTS:        true,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"content": "see below",
		"embeds": [{"title":"Report","fields":[{"name":"Status","value":"ok","inline":true}]}],
		"components": [{"type":2,"label":"Ack","custom_id":"ack","style":1,"disabled":false}],
		"poll": {"question":"Good?","options":["yes","no"]},
		"tts": true,
		"username": "bot",
		"avatar_url": "https://example.com/a.png"
	}`, mustJSON(t, payload))
}

func TestAssembler_TruncatesEmbeds(t *testing.T) {
	embeds := make([]*EmbedBuilder, 12)
	for i := range embeds {
		embeds[i] = newTitledEmbed(t, string(rune('a'+i)))
	}

	payload, err := NewAssembler().Assemble(ExecuteParams{Embeds: embeds})
	require.NoError(t, err)
	require.Len(t, payload.Embeds, MaxEmbeds)
	assert.Equal(t, "a", payload.Embeds[0].Title)
	assert.Equal(t, "j", payload.Embeds[MaxEmbeds-1].Title)
}

func TestAssembler_InvalidFieldFailsWholeCall(t *testing.T) {
	good := newTitledEmbed(t, "good")
	bad, err := NewEmbedBuilder(WithFields(EmbedField{"name": "missing value"}))
	require.NoError(t, err)

	payload, err := NewAssembler().Assemble(ExecuteParams{Content: "x", Embeds: []*EmbedBuilder{good, bad}})
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidField)
	assert.Contains(t, err.Error(), "embeds[1]")
}

func TestAssembler_InvalidFieldType(t *testing.T) {
	bad, err := NewEmbedBuilder(WithFields(EmbedField{"name": "n", "value": 42}))
	require.NoError(t, err)

	payload, err := NewAssembler().Assemble(ExecuteParams{Embeds: []*EmbedBuilder{bad}})
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidFieldType)
}

func TestAssembler_InvalidFieldBeyondLimitIsIgnored(t *testing.T) {
	embeds := make([]*EmbedBuilder, MaxEmbeds)
	for i := range embeds {
		embeds[i] = newTitledEmbed(t, "ok")
	}
	bad, err := NewEmbedBuilder(WithFields(EmbedField{}))
	require.NoError(t, err)

	payload, err := NewAssembler().Assemble(ExecuteParams{Embeds: append(embeds, bad)})
	require.NoError(t, err)
	assert.Len(t, payload.Embeds, MaxEmbeds)
}

func TestAssembler_NilEmbedBuilder(t *testing.T) {
	payload, err := NewAssembler().Assemble(ExecuteParams{Embeds: []*EmbedBuilder{nil}})
	assert.Nil(t, payload)

	var validationErr *errorwrapper.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestAssembler_AllowedMentions(t *testing.T) {
	mentions := NewAllowedMentionsBuilder().SetParse(ParseOptions{Users: true}).AddRole(1)

	payload, err := NewAssembler().Assemble(ExecuteParams{Content: "hi", AllowedMentions: mentions})
	require.NoError(t, err)
	assert.Nil(t, payload.AllowedMentions)
	assert.NotContains(t, mustJSON(t, payload), "allowed_mentions")

	payload, err = NewAssembler().WithAllowedMentions(true).Assemble(ExecuteParams{Content: "hi", AllowedMentions: mentions})
	require.NoError(t, err)
	require.NotNil(t, payload.AllowedMentions)
	assert.JSONEq(t,
		`{"content":"hi","embeds":[],"components":[],"poll":{},"tts":false,"allowed_mentions":{"parse":["users"],"roles":["1"]}}`,
		mustJSON(t, payload))

	payload, err = NewAssembler().WithAllowedMentions(true).Assemble(ExecuteParams{AllowedMentions: NewAllowedMentionsBuilder()})
	require.NoError(t, err)
	assert.Nil(t, payload.AllowedMentions)
}

func TestAssembler_DoesNotMutateBuilders(t *testing.T) {
	embed := newTitledEmbed(t, "before")
	embed.AddField("a", "b", false)
	components := NewComponentsBuilder().AddButton("a", "a")

	payload, err := NewAssembler().Assemble(ExecuteParams{Embeds: []*EmbedBuilder{embed}, Components: components})
	require.NoError(t, err)

	embed.SetTitle("after").AddField("c", "d", false)
	components.AddButton("b", "b")

	assert.Equal(t, "before", payload.Embeds[0].Title)
	assert.Len(t, payload.Embeds[0].Fields, 1)
	assert.Len(t, payload.Components, 1)
	assert.Len(t, embed.GetFields(), 2)
}
