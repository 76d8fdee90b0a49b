package discord

// ComponentType discriminates message components on the wire.
type ComponentType int

const (
	ComponentTypeActionRow  ComponentType = 1
	ComponentTypeButton     ComponentType = 2
	ComponentTypeSelectMenu ComponentType = 3
)

// ButtonStyle is the visual style of a button.
type ButtonStyle int

const (
	ButtonStylePrimary   ButtonStyle = 1
	ButtonStyleSecondary ButtonStyle = 2
	ButtonStyleSuccess   ButtonStyle = 3
	ButtonStyleDanger    ButtonStyle = 4
	ButtonStyleLink      ButtonStyle = 5
)

// Component is any record that can appear in a components list.
type Component interface {
	ComponentType() ComponentType
}

// Emoji is a partial emoji shown on buttons and select options.
type Emoji struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Animated bool   `json:"animated,omitempty" yaml:"animated,omitempty"`
}

// ActionRow groups components horizontally.
type ActionRow struct {
	Type       ComponentType `json:"type"`
	Components []Component   `json:"components"`
}

// ComponentType implements Component.
func (ActionRow) ComponentType() ComponentType { return ComponentTypeActionRow }

// Button is a clickable component. Link buttons carry a URL instead of a
// custom id.
type Button struct {
	Type     ComponentType `json:"type"`
	Label    string        `json:"label"`
	CustomID string        `json:"custom_id" validate:"required_unless=Style 5"`
	Style    ButtonStyle   `json:"style" validate:"min=1,max=5"`
	Emoji    *Emoji        `json:"emoji,omitempty"`
	URL      string        `json:"url,omitempty" validate:"required_if=Style 5"`
	Disabled bool          `json:"disabled"`
}

// ComponentType implements Component.
func (Button) ComponentType() ComponentType { return ComponentTypeButton }

// ButtonOption customizes a button.
type ButtonOption func(*Button)

// WithButtonStyle sets the button style.
func WithButtonStyle(style ButtonStyle) ButtonOption {
	return func(b *Button) { b.Style = style }
}

// WithButtonEmoji sets the button emoji.
func WithButtonEmoji(emoji Emoji) ButtonOption {
	return func(b *Button) { b.Emoji = &emoji }
}

// WithButtonURL sets the link target of the button.
func WithButtonURL(url string) ButtonOption {
	return func(b *Button) { b.URL = url }
}

// WithButtonDisabled disables the button.
func WithButtonDisabled(disabled bool) ButtonOption {
	return func(b *Button) { b.Disabled = disabled }
}

// NewButton creates a primary, enabled button unless options say otherwise.
func NewButton(label, customID string, opts ...ButtonOption) Button {
	button := Button{
		Type:     ComponentTypeButton,
		Label:    label,
		CustomID: customID,
		Style:    ButtonStylePrimary,
	}
	for _, opt := range opts {
		opt(&button)
	}
	return button
}

// SelectOption is a single choice of a select menu.
type SelectOption struct {
	Label       string `json:"label" yaml:"label" validate:"required"`
	Value       string `json:"value" yaml:"value" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Emoji       *Emoji `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Default     bool   `json:"default,omitempty" yaml:"default,omitempty"`
}

// SelectMenu is a dropdown component.
type SelectMenu struct {
	Type        ComponentType  `json:"type"`
	CustomID    string         `json:"custom_id" validate:"required"`
	Options     []SelectOption `json:"options" validate:"dive"`
	Placeholder string         `json:"placeholder"`
	MinValues   int            `json:"min_values" validate:"min=0,ltefield=MaxValues"`
	MaxValues   int            `json:"max_values" validate:"min=1,max=25"`
	Disabled    bool           `json:"disabled"`
}

// ComponentType implements Component.
func (SelectMenu) ComponentType() ComponentType { return ComponentTypeSelectMenu }

// SelectMenuOption customizes a select menu.
type SelectMenuOption func(*SelectMenu)

// WithMinValues sets the minimum number of selections.
func WithMinValues(n int) SelectMenuOption {
	return func(s *SelectMenu) { s.MinValues = n }
}

// WithMaxValues sets the maximum number of selections.
func WithMaxValues(n int) SelectMenuOption {
	return func(s *SelectMenu) { s.MaxValues = n }
}

// WithSelectDisabled disables the select menu.
func WithSelectDisabled(disabled bool) SelectMenuOption {
	return func(s *SelectMenu) { s.Disabled = disabled }
}

// NewSelectMenu creates a single-choice select menu unless options say otherwise.
func NewSelectMenu(customID string, options []SelectOption, placeholder string, opts ...SelectMenuOption) SelectMenu {
	menu := SelectMenu{
		Type:        ComponentTypeSelectMenu,
		CustomID:    customID,
		Options:     append([]SelectOption{}, options...),
		Placeholder: placeholder,
		MinValues:   1,
		MaxValues:   1,
	}
	for _, opt := range opts {
		opt(&menu)
	}
	return menu
}

// ComponentsBuilder accumulates the top-level components list of a message.
//
// AddButton and AddSelectMenu append to the same flat list as AddActionRow
// rather than nesting into a row. Use RowBuilder with AddActionRow for the
// nested shape.
type ComponentsBuilder struct {
	components []Component
}

// NewComponentsBuilder creates an empty components builder
func NewComponentsBuilder() *ComponentsBuilder {
	return &ComponentsBuilder{components: []Component{}}
}

// AddActionRow appends an action row holding components.
func (cb *ComponentsBuilder) AddActionRow(components ...Component) *ComponentsBuilder {
	cb.components = append(cb.components, ActionRow{
		Type:       ComponentTypeActionRow,
		Components: append([]Component{}, components...),
	})
	return cb
}

// AddButton appends a button to the top-level list.
func (cb *ComponentsBuilder) AddButton(label, customID string, opts ...ButtonOption) *ComponentsBuilder {
	cb.components = append(cb.components, NewButton(label, customID, opts...))
	return cb
}

// AddSelectMenu appends a select menu to the top-level list.
func (cb *ComponentsBuilder) AddSelectMenu(customID string, options []SelectOption, placeholder string, opts ...SelectMenuOption) *ComponentsBuilder {
	cb.components = append(cb.components, NewSelectMenu(customID, options, placeholder, opts...))
	return cb
}

// GetComponents returns a copy of the top-level list.
func (cb *ComponentsBuilder) GetComponents() []Component {
	return append([]Component{}, cb.components...)
}

// RowBuilder collects the children of a single action row.
type RowBuilder struct {
	components []Component
}

// NewRowBuilder creates an empty row builder
func NewRowBuilder() *RowBuilder {
	return &RowBuilder{}
}

// AddButton appends a button to the row.
func (rb *RowBuilder) AddButton(label, customID string, opts ...ButtonOption) *RowBuilder {
	rb.components = append(rb.components, NewButton(label, customID, opts...))
	return rb
}

// AddSelectMenu appends a select menu to the row.
func (rb *RowBuilder) AddSelectMenu(customID string, options []SelectOption, placeholder string, opts ...SelectMenuOption) *RowBuilder {
	rb.components = append(rb.components, NewSelectMenu(customID, options, placeholder, opts...))
	return rb
}

// Components returns the row's children, ready for AddActionRow.
func (rb *RowBuilder) Components() []Component {
	return append([]Component{}, rb.components...)
}
