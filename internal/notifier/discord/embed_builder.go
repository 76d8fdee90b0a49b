package discord

import (
	"fmt"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
)

// embedConfig collects constructor options before color and timestamp are
// normalized, so option order does not matter.
type embedConfig struct {
	embed        Embed
	color        any
	timestamp    any
	hasTimestamp bool
	normalizer   *TimestampNormalizer
}

// EmbedOption configures a new EmbedBuilder.
type EmbedOption func(*embedConfig)

// WithTitle sets the initial title.
func WithTitle(title string) EmbedOption {
	return func(c *embedConfig) { c.embed.Title = title }
}

// WithDescription sets the initial description.
func WithDescription(description string) EmbedOption {
	return func(c *embedConfig) { c.embed.Description = description }
}

// WithURL sets the initial title link.
func WithURL(url string) EmbedOption {
	return func(c *embedConfig) { c.embed.URL = url }
}

// WithColor sets the initial color as a hex string or an integer.
func WithColor(color any) EmbedOption {
	return func(c *embedConfig) { c.color = color }
}

// WithTimestamp sets the initial timestamp. A nil value means now.
func WithTimestamp(ts any) EmbedOption {
	return func(c *embedConfig) {
		c.timestamp = ts
		c.hasTimestamp = true
	}
}

// WithFields seeds the field list with raw records.
func WithFields(fields ...EmbedField) EmbedOption {
	return func(c *embedConfig) { c.embed.Fields = append(c.embed.Fields, cloneFields(fields)...) }
}

// WithFooter sets the initial footer.
func WithFooter(text, iconURL string) EmbedOption {
	return func(c *embedConfig) { c.embed.Footer = NewEmbedFooter(text, iconURL) }
}

// WithImage sets the initial image.
func WithImage(url string, height, width int) EmbedOption {
	return func(c *embedConfig) { c.embed.Image = NewEmbedMedia(url, height, width) }
}

// WithThumbnail sets the initial thumbnail.
func WithThumbnail(url string, height, width int) EmbedOption {
	return func(c *embedConfig) { c.embed.Thumbnail = NewEmbedMedia(url, height, width) }
}

// WithVideo sets the initial video.
func WithVideo(url string, height, width int) EmbedOption {
	return func(c *embedConfig) { c.embed.Video = NewEmbedMedia(url, height, width) }
}

// WithProvider sets the initial provider.
func WithProvider(name, url string) EmbedOption {
	return func(c *embedConfig) { c.embed.Provider = NewEmbedProvider(name, url) }
}

// WithAuthor sets the initial author.
func WithAuthor(name, url, iconURL string) EmbedOption {
	return func(c *embedConfig) { c.embed.Author = NewEmbedAuthor(name, url, iconURL) }
}

// WithTimestampNormalizer injects the normalizer, and so the clock, used by
// SetTimestamp.
func WithTimestampNormalizer(tn *TimestampNormalizer) EmbedOption {
	return func(c *embedConfig) { c.normalizer = tn }
}

// EmbedBuilder helps in constructing Embed objects.
type EmbedBuilder struct {
	embed      Embed
	timestamps *TimestampNormalizer
}

// NewEmbedBuilder creates a new embed builder. It fails when the color or
// timestamp option cannot be normalized.
func NewEmbedBuilder(opts ...EmbedOption) (*EmbedBuilder, error) {
	cfg := &embedConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	timestamps := cfg.normalizer
	if timestamps == nil {
		timestamps = defaultTimestampNormalizer
	}

	eb := &EmbedBuilder{
		embed:      cfg.embed,
		timestamps: timestamps,
	}

	if err := eb.SetColor(cfg.color); err != nil {
		return nil, err
	}
	if cfg.hasTimestamp {
		if err := eb.SetTimestamp(cfg.timestamp); err != nil {
			return nil, err
		}
	}

	return eb, nil
}

// SetTitle sets the embed title
func (eb *EmbedBuilder) SetTitle(title string) *EmbedBuilder {
	eb.embed.Title = title
	return eb
}

// SetDescription sets the embed description
func (eb *EmbedBuilder) SetDescription(description string) *EmbedBuilder {
	eb.embed.Description = description
	return eb
}

// SetURL sets the URL that makes the title clickable
func (eb *EmbedBuilder) SetURL(url string) *EmbedBuilder {
	eb.embed.URL = url
	return eb
}

// SetColor sets the embed color from a hex string or an integer. A nil color
// leaves the current color untouched; an invalid one is rejected without
// changing it.
func (eb *EmbedBuilder) SetColor(color any) error {
	value, err := NormalizeColor(color)
	if err != nil {
		return err
	}
	if value != nil {
		eb.embed.Color = value
	}
	return nil
}

// SetTimestamp sets the embed timestamp. A nil value means now.
func (eb *EmbedBuilder) SetTimestamp(ts any) error {
	normalized, err := eb.timestamps.Normalize(ts)
	if err != nil {
		return err
	}
	eb.embed.Timestamp = normalized
	return nil
}

// SetFooter replaces the embed footer
func (eb *EmbedBuilder) SetFooter(text, iconURL string) *EmbedBuilder {
	eb.embed.Footer = NewEmbedFooter(text, iconURL)
	return eb
}

// SetImage replaces the embed image
func (eb *EmbedBuilder) SetImage(url string, height, width int) *EmbedBuilder {
	eb.embed.Image = NewEmbedMedia(url, height, width)
	return eb
}

// SetThumbnail replaces the embed thumbnail
func (eb *EmbedBuilder) SetThumbnail(url string, height, width int) *EmbedBuilder {
	eb.embed.Thumbnail = NewEmbedMedia(url, height, width)
	return eb
}

// SetVideo replaces the embed video
func (eb *EmbedBuilder) SetVideo(url string, height, width int) *EmbedBuilder {
	eb.embed.Video = NewEmbedMedia(url, height, width)
	return eb
}

// SetProvider replaces the embed provider
func (eb *EmbedBuilder) SetProvider(name, url string) *EmbedBuilder {
	eb.embed.Provider = NewEmbedProvider(name, url)
	return eb
}

// SetAuthor replaces the embed author
func (eb *EmbedBuilder) SetAuthor(name, url, iconURL string) *EmbedBuilder {
	eb.embed.Author = NewEmbedAuthor(name, url, iconURL)
	return eb
}

// AddField appends a field to the embed
func (eb *EmbedBuilder) AddField(name, value string, inline bool) *EmbedBuilder {
	eb.embed.Fields = append(eb.embed.Fields, NewEmbedField(name, value, inline))
	return eb
}

// RemoveField removes the field at index.
func (eb *EmbedBuilder) RemoveField(index int) error {
	if index < 0 || index >= len(eb.embed.Fields) {
		return errorwrapper.NewKindError(errorwrapper.ErrIndexOutOfRange, "fields", index,
			fmt.Sprintf("field index out of range [0, %d)", len(eb.embed.Fields)))
	}
	eb.embed.Fields = append(eb.embed.Fields[:index], eb.embed.Fields[index+1:]...)
	return nil
}

// GetFields returns a copy of the current fields.
func (eb *EmbedBuilder) GetFields() []EmbedField {
	return cloneFields(eb.embed.Fields)
}

// ToPayload returns a snapshot of the embed. Later builder calls do not
// affect it.
func (eb *EmbedBuilder) ToPayload() Embed {
	embed := eb.embed
	embed.Fields = cloneFields(eb.embed.Fields)
	if embed.Color != nil {
		color := *embed.Color
		embed.Color = &color
	}
	if len(embed.Fields) == 0 {
		embed.Fields = nil
	}
	return embed
}
