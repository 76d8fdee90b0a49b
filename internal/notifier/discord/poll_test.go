package discord

import (
	"testing"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollBuilder(t *testing.T) {
	pb := NewPollBuilder("Lunch?", "Pizza").AddOption("Sushi").AddOption("Pizza")

	assert.JSONEq(t, `{"question":"Lunch?","options":["Pizza","Sushi","Pizza"]}`, mustJSON(t, pb.ToPayload()))

	require.NoError(t, pb.RemoveOption(0))
	assert.Equal(t, []string{"Sushi", "Pizza"}, pb.GetOptions())

	pb.SetQuestion("Dinner?")
	assert.Equal(t, "Dinner?", pb.ToPayload().Question)
}

func TestPollBuilder_NoOptions(t *testing.T) {
	pb := NewPollBuilder("")
	assert.JSONEq(t, `{"question":"","options":[]}`, mustJSON(t, pb.ToPayload()))
}

func TestPollBuilder_RemoveOptionOutOfRange(t *testing.T) {
	pb := NewPollBuilder("q")
	assert.ErrorIs(t, pb.RemoveOption(0), errorwrapper.ErrIndexOutOfRange)

	pb.AddOption("a")
	assert.ErrorIs(t, pb.RemoveOption(1), errorwrapper.ErrIndexOutOfRange)
	assert.ErrorIs(t, pb.RemoveOption(-1), errorwrapper.ErrIndexOutOfRange)
	assert.Equal(t, []string{"a"}, pb.GetOptions())
}

func TestPollBuilder_GetOptionsIsACopy(t *testing.T) {
	pb := NewPollBuilder("q", "a")
	options := pb.GetOptions()
	options[0] = "mutated"
	assert.Equal(t, []string{"a"}, pb.GetOptions())
}
