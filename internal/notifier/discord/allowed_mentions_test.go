package discord

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedMentionsBuilder_Empty(t *testing.T) {
	mentions := NewAllowedMentionsBuilder().ToPayload()
	assert.True(t, mentions.IsEmpty())
	assert.Equal(t, `{}`, mustJSON(t, mentions))
}

func TestAllowedMentionsBuilder_SetParseOrder(t *testing.T) {
	ab := NewAllowedMentionsBuilder().SetParse(ParseOptions{Everyone: true, Users: true, Roles: true})
	assert.Equal(t, []MentionType{MentionTypeRoles, MentionTypeUsers, MentionTypeEveryone}, ab.ToPayload().Parse)

	ab.SetParse(ParseOptions{Users: true})
	assert.Equal(t, []MentionType{MentionTypeUsers}, ab.ToPayload().Parse)
}

func TestAllowedMentionsBuilder_SetParseExplicitListWins(t *testing.T) {
	ab := NewAllowedMentionsBuilder().SetParse(ParseOptions{
		Parse:    []MentionType{MentionTypeEveryone},
		Roles:    true,
		Everyone: false,
	})
	assert.Equal(t, []MentionType{MentionTypeEveryone}, ab.ToPayload().Parse)
}

func TestAllowedMentionsBuilder_UsersAndRoles(t *testing.T) {
	ab := NewAllowedMentionsBuilder()
	for i := uint64(1); i <= 5; i++ {
		ab.AddUser(i)
	}
	ab.AddRole(123456789012345678)

	assert.JSONEq(t, `{"users":["1","2","3","4","5"],"roles":["123456789012345678"]}`, mustJSON(t, ab.ToPayload()))
}

func TestAllowedMentionsBuilder_KeepsFirstHundred(t *testing.T) {
	ab := NewAllowedMentionsBuilder()
	for i := uint64(0); i < 150; i++ {
		ab.AddUser(i)
		ab.AddRole(1000 + i)
	}

	mentions := ab.ToPayload()
	require.Len(t, mentions.Users, MaxAllowedMentionIDs)
	require.Len(t, mentions.Roles, MaxAllowedMentionIDs)
	for i := 0; i < MaxAllowedMentionIDs; i++ {
		assert.Equal(t, strconv.Itoa(i), mentions.Users[i])
		assert.Equal(t, strconv.Itoa(1000+i), mentions.Roles[i])
	}
}

func TestAllowedMentionsBuilder_DuplicatesKept(t *testing.T) {
	ab := NewAllowedMentionsBuilder().AddUser(7).AddUser(7)
	assert.Equal(t, []string{"7", "7"}, ab.ToPayload().Users)
}
