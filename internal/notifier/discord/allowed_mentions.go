package discord

import "strconv"

// MaxAllowedMentionIDs caps the users and roles lists of allowed mentions.
const MaxAllowedMentionIDs = 100

// MentionType is a mention scope that the service parses from content.
type MentionType string

const (
	MentionTypeRoles    MentionType = "roles"
	MentionTypeUsers    MentionType = "users"
	MentionTypeEveryone MentionType = "everyone"
)

// AllowedMentions is the wire form of allowed mentions.
type AllowedMentions struct {
	Parse []MentionType `json:"parse,omitempty"`
	Users []string      `json:"users,omitempty"`
	Roles []string      `json:"roles,omitempty"`
}

// IsEmpty reports whether nothing would be serialized.
func (am AllowedMentions) IsEmpty() bool {
	return len(am.Parse) == 0 && len(am.Users) == 0 && len(am.Roles) == 0
}

// ParseOptions selects the parse scopes. A non-nil Parse replaces the scopes
// verbatim and the flags are ignored.
type ParseOptions struct {
	Parse    []MentionType
	Roles    bool
	Users    bool
	Everyone bool
}

// AllowedMentionsBuilder accumulates parse scopes and explicit allow-lists.
// Scopes and allow-lists overlap on the service side; they are not
// cross-checked here.
type AllowedMentionsBuilder struct {
	parse []MentionType
	users []string
	roles []string
}

// NewAllowedMentionsBuilder creates an empty allowed mentions builder
func NewAllowedMentionsBuilder() *AllowedMentionsBuilder {
	return &AllowedMentionsBuilder{}
}

// SetParse replaces the parse scopes.
func (ab *AllowedMentionsBuilder) SetParse(opts ParseOptions) *AllowedMentionsBuilder {
	if opts.Parse != nil {
		ab.parse = append([]MentionType{}, opts.Parse...)
		return ab
	}

	ab.parse = []MentionType{}
	if opts.Roles {
		ab.parse = append(ab.parse, MentionTypeRoles)
	}
	if opts.Users {
		ab.parse = append(ab.parse, MentionTypeUsers)
	}
	if opts.Everyone {
		ab.parse = append(ab.parse, MentionTypeEveryone)
	}
	return ab
}

// AddUser allows a mention of the given user id
func (ab *AllowedMentionsBuilder) AddUser(userID uint64) *AllowedMentionsBuilder {
	ab.users = append(ab.users, strconv.FormatUint(userID, 10))
	return ab
}

// AddRole allows a mention of the given role id
func (ab *AllowedMentionsBuilder) AddRole(roleID uint64) *AllowedMentionsBuilder {
	ab.roles = append(ab.roles, strconv.FormatUint(roleID, 10))
	return ab
}

// ToPayload emits only non-empty keys. Users and roles keep their first
// MaxAllowedMentionIDs entries.
func (ab *AllowedMentionsBuilder) ToPayload() AllowedMentions {
	var mentions AllowedMentions
	if len(ab.parse) > 0 {
		mentions.Parse = append([]MentionType{}, ab.parse...)
	}
	if len(ab.users) > 0 {
		mentions.Users = firstIDs(ab.users)
	}
	if len(ab.roles) > 0 {
		mentions.Roles = firstIDs(ab.roles)
	}
	return mentions
}

func firstIDs(ids []string) []string {
	if len(ids) > MaxAllowedMentionIDs {
		ids = ids[:MaxAllowedMentionIDs]
	}
	return append([]string{}, ids...)
}
