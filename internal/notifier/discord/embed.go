package discord

// Embed represents a Discord embed object. Unset members are omitted when
// serialized; Color is a pointer so that black (0) is still emitted.
type Embed struct {
	Title       string         `json:"title,omitempty"`       // Title of embed
	Description string         `json:"description,omitempty"` // Description of embed
	URL         string         `json:"url,omitempty"`         // URL of embed
	Timestamp   string         `json:"timestamp,omitempty"`   // RFC 3339 timestamp, UTC
	Color       *int           `json:"color,omitempty"`       // Color code of the embed
	Footer      *EmbedFooter   `json:"footer,omitempty"`
	Image       *EmbedMedia    `json:"image,omitempty"`
	Thumbnail   *EmbedMedia    `json:"thumbnail,omitempty"`
	Video       *EmbedMedia    `json:"video,omitempty"`
	Provider    *EmbedProvider `json:"provider,omitempty"`
	Author      *EmbedAuthor   `json:"author,omitempty"`
	Fields      []EmbedField   `json:"fields,omitempty"` // Array of embed field objects
}

// EmbedFooter represents the footer of an embed.
type EmbedFooter struct {
	Text    string `json:"text"`               // Footer text
	IconURL string `json:"icon_url,omitempty"` // URL of footer icon (only supports http(s) and attachments)
}

// NewEmbedFooter creates a new embed footer
func NewEmbedFooter(text, iconURL string) *EmbedFooter {
	return &EmbedFooter{
		Text:    text,
		IconURL: iconURL,
	}
}

// EmbedMedia represents the image, thumbnail or video of an embed.
type EmbedMedia struct {
	URL    string `json:"url"` // Source URL (only supports http(s) and attachments)
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
}

// NewEmbedMedia creates a new embed media record. Zero dimensions are omitted.
func NewEmbedMedia(url string, height, width int) *EmbedMedia {
	return &EmbedMedia{URL: url, Height: height, Width: width}
}

// EmbedProvider represents the provider of an embed.
type EmbedProvider struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// NewEmbedProvider creates a new embed provider
func NewEmbedProvider(name, url string) *EmbedProvider {
	return &EmbedProvider{Name: name, URL: url}
}

// EmbedAuthor represents the author of an embed.
type EmbedAuthor struct {
	Name    string `json:"name"`               // Name of author
	URL     string `json:"url,omitempty"`      // URL of author (only supports http(s))
	IconURL string `json:"icon_url,omitempty"` // URL of author icon (only supports http(s) and attachments)
}

// NewEmbedAuthor creates a new embed author
func NewEmbedAuthor(name, url, iconURL string) *EmbedAuthor {
	return &EmbedAuthor{
		Name:    name,
		URL:     url,
		IconURL: iconURL,
	}
}
