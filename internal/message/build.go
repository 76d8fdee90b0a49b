package message

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
	"github.com/aleister1102/hookcord/internal/notifier/discord"
)

var buttonStyles = map[string]discord.ButtonStyle{
	"primary":   discord.ButtonStylePrimary,
	"secondary": discord.ButtonStyleSecondary,
	"success":   discord.ButtonStyleSuccess,
	"danger":    discord.ButtonStyleDanger,
	"link":      discord.ButtonStyleLink,
}

// Build turns the file into execute parameters by driving the builders.
// Raw embed fields are passed through untouched, so malformed ones fail
// when the payload is assembled.
func (f *File) Build(normalizer *discord.TimestampNormalizer) (discord.ExecuteParams, error) {
	params := discord.ExecuteParams{
		Content:   f.Content,
		Username:  f.Username,
		AvatarURL: f.AvatarURL,
		TTS:       f.TTS,
		Wait:      f.Wait,
	}

	for i, def := range f.Embeds {
		embed, err := def.build(normalizer)
		if err != nil {
			return discord.ExecuteParams{}, errorwrapper.WrapError(err, fmt.Sprintf("embeds[%d]", i))
		}
		params.Embeds = append(params.Embeds, embed)
	}

	if len(f.Components) > 0 {
		components := discord.NewComponentsBuilder()
		for i, row := range f.Components {
			rowBuilder := discord.NewRowBuilder()
			for j, def := range row.Components {
				if err := def.addTo(rowBuilder); err != nil {
					return discord.ExecuteParams{}, errorwrapper.WrapError(err, fmt.Sprintf("components[%d].components[%d]", i, j))
				}
			}
			components.AddActionRow(rowBuilder.Components()...)
		}
		params.Components = components
	}

	if f.Poll != nil {
		params.Poll = discord.NewPollBuilder(f.Poll.Question, f.Poll.Options...)
	}

	if f.AllowedMentions != nil {
		params.AllowedMentions = f.AllowedMentions.build()
	}

	return params, nil
}

func (s EmbedDef) build(normalizer *discord.TimestampNormalizer) (*discord.EmbedBuilder, error) {
	opts := []discord.EmbedOption{
		discord.WithTitle(s.Title),
		discord.WithDescription(s.Description),
		discord.WithURL(s.URL),
		discord.WithColor(s.Color),
	}
	if normalizer != nil {
		opts = append(opts, discord.WithTimestampNormalizer(normalizer))
	}
	switch {
	case s.Timestamp != nil:
		opts = append(opts, discord.WithTimestamp(s.Timestamp))
	case s.Now:
		opts = append(opts, discord.WithTimestamp(nil))
	}
	for _, field := range s.Fields {
		opts = append(opts, discord.WithFields(discord.EmbedField(field)))
	}
	if s.Footer != nil {
		opts = append(opts, discord.WithFooter(s.Footer.Text, s.Footer.IconURL))
	}
	if s.Image != nil {
		opts = append(opts, discord.WithImage(s.Image.URL, s.Image.Height, s.Image.Width))
	}
	if s.Thumbnail != nil {
		opts = append(opts, discord.WithThumbnail(s.Thumbnail.URL, s.Thumbnail.Height, s.Thumbnail.Width))
	}
	if s.Video != nil {
		opts = append(opts, discord.WithVideo(s.Video.URL, s.Video.Height, s.Video.Width))
	}
	if s.Provider != nil {
		opts = append(opts, discord.WithProvider(s.Provider.Name, s.Provider.URL))
	}
	if s.Author != nil {
		opts = append(opts, discord.WithAuthor(s.Author.Name, s.Author.URL, s.Author.IconURL))
	}

	return discord.NewEmbedBuilder(opts...)
}

func (s ComponentDef) addTo(row *discord.RowBuilder) error {
	switch strings.ToLower(s.Type) {
	case "button":
		style, err := parseButtonStyle(s.Style)
		if err != nil {
			return err
		}
		opts := []discord.ButtonOption{
			discord.WithButtonStyle(style),
			discord.WithButtonURL(s.URL),
			discord.WithButtonDisabled(s.Disabled),
		}
		if s.Emoji != nil {
			opts = append(opts, discord.WithButtonEmoji(*s.Emoji))
		}
		row.AddButton(s.Label, s.CustomID, opts...)
	case "select", "select_menu":
		var opts []discord.SelectMenuOption
		if s.MinValues != nil {
			opts = append(opts, discord.WithMinValues(*s.MinValues))
		}
		if s.MaxValues != nil {
			opts = append(opts, discord.WithMaxValues(*s.MaxValues))
		}
		opts = append(opts, discord.WithSelectDisabled(s.Disabled))
		row.AddSelectMenu(s.CustomID, s.Options, s.Placeholder, opts...)
	default:
		return errorwrapper.NewKindError(errorwrapper.ErrInvalidComponent, "type", s.Type, "component type must be 'button' or 'select'")
	}
	return nil
}

// parseButtonStyle accepts a style name or its number. Absent means primary.
func parseButtonStyle(style any) (discord.ButtonStyle, error) {
	switch v := style.(type) {
	case nil:
		return discord.ButtonStylePrimary, nil
	case string:
		if named, ok := buttonStyles[strings.ToLower(strings.TrimSpace(v))]; ok {
			return named, nil
		}
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return discord.ButtonStyle(n), nil
		}
	case int:
		return discord.ButtonStyle(v), nil
	case float64:
		if v == math.Trunc(v) {
			return discord.ButtonStyle(int(v)), nil
		}
	}
	return 0, errorwrapper.NewKindError(errorwrapper.ErrInvalidComponent, "style", style, "unknown button style")
}

func (s MentionsDef) build() *discord.AllowedMentionsBuilder {
	builder := discord.NewAllowedMentionsBuilder()
	if len(s.Parse) > 0 || s.Everyone {
		var parse []discord.MentionType
		for _, scope := range s.Parse {
			parse = append(parse, discord.MentionType(scope))
		}
		if s.Everyone {
			parse = append(parse, discord.MentionTypeEveryone)
		}
		builder.SetParse(discord.ParseOptions{Parse: parse})
	}
	for _, id := range s.Users {
		builder.AddUser(id)
	}
	for _, id := range s.Roles {
		builder.AddRole(id)
	}
	return builder
}
