package message

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
	"github.com/aleister1102/hookcord/internal/notifier/discord"
	"gopkg.in/yaml.v3"
)

// File is a declarative webhook message, usually kept as YAML next to the
// scripts that send it.
type File struct {
	Content         string       `json:"content,omitempty" yaml:"content,omitempty"`
	Username        string       `json:"username,omitempty" yaml:"username,omitempty"`
	AvatarURL       string       `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	TTS             bool         `json:"tts,omitempty" yaml:"tts,omitempty"`
	Wait            bool         `json:"wait,omitempty" yaml:"wait,omitempty"`
	Embeds          []EmbedDef   `json:"embeds,omitempty" yaml:"embeds,omitempty"`
	Components      []RowDef     `json:"components,omitempty" yaml:"components,omitempty"`
	Poll            *PollDef     `json:"poll,omitempty" yaml:"poll,omitempty"`
	AllowedMentions *MentionsDef `json:"allowed_mentions,omitempty" yaml:"allowed_mentions,omitempty"`
}

// EmbedDef describes one embed. Color and timestamp accept anything the
// embed builder accepts; fields are kept raw and checked at assembly.
type EmbedDef struct {
	Title       string           `json:"title,omitempty" yaml:"title,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string           `json:"url,omitempty" yaml:"url,omitempty"`
	Color       any              `json:"color,omitempty" yaml:"color,omitempty"`
	Timestamp   any              `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Now         bool             `json:"now,omitempty" yaml:"now,omitempty"` // stamp with the current time
	Fields      []map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
	Footer      *FooterDef       `json:"footer,omitempty" yaml:"footer,omitempty"`
	Image       *MediaDef        `json:"image,omitempty" yaml:"image,omitempty"`
	Thumbnail   *MediaDef        `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Video       *MediaDef        `json:"video,omitempty" yaml:"video,omitempty"`
	Provider    *ProviderDef     `json:"provider,omitempty" yaml:"provider,omitempty"`
	Author      *AuthorDef       `json:"author,omitempty" yaml:"author,omitempty"`
}

type FooterDef struct {
	Text    string `json:"text" yaml:"text"`
	IconURL string `json:"icon_url,omitempty" yaml:"icon_url,omitempty"`
}

type MediaDef struct {
	URL    string `json:"url" yaml:"url"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty"`
}

type ProviderDef struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

type AuthorDef struct {
	Name    string `json:"name" yaml:"name"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty" yaml:"icon_url,omitempty"`
}

// RowDef is one action row.
type RowDef struct {
	Components []ComponentDef `json:"components" yaml:"components"`
}

// ComponentDef is a button or a select menu, told apart by Type.
type ComponentDef struct {
	Type string `json:"type" yaml:"type"` // "button" or "select"

	// button
	Label    string         `json:"label,omitempty" yaml:"label,omitempty"`
	Style    any            `json:"style,omitempty" yaml:"style,omitempty"` // name or number
	URL      string         `json:"url,omitempty" yaml:"url,omitempty"`
	Emoji    *discord.Emoji `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Disabled bool           `json:"disabled,omitempty" yaml:"disabled,omitempty"`

	// both
	CustomID string `json:"custom_id,omitempty" yaml:"custom_id,omitempty"`

	// select
	Options     []discord.SelectOption `json:"options,omitempty" yaml:"options,omitempty"`
	Placeholder string                 `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	MinValues   *int                   `json:"min_values,omitempty" yaml:"min_values,omitempty"`
	MaxValues   *int                   `json:"max_values,omitempty" yaml:"max_values,omitempty"`
}

type PollDef struct {
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// MentionsDef mirrors discord.ParseOptions plus explicit allow-lists.
type MentionsDef struct {
	Parse    []string `json:"parse,omitempty" yaml:"parse,omitempty"`
	Roles    []uint64 `json:"roles,omitempty" yaml:"roles,omitempty"`
	Users    []uint64 `json:"users,omitempty" yaml:"users,omitempty"`
	Everyone bool     `json:"everyone,omitempty" yaml:"everyone,omitempty"`
}

// Load reads a message file. Files ending in .json are decoded as JSON,
// everything else as YAML.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read message file")
	}
	return Parse(data, strings.EqualFold(filepath.Ext(path), ".json"))
}

// Parse decodes a message document.
func Parse(data []byte, isJSON bool) (*File, error) {
	var file File
	if isJSON {
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, errorwrapper.NewError("failed to unmarshal JSON message: %w", err)
		}
		return &file, nil
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errorwrapper.NewError("failed to unmarshal YAML message: %w", err)
	}
	return &file, nil
}
