package discord

import (
	"fmt"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
)

// Poll is the wire form of a poll.
type Poll struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// PollBuilder accumulates a poll question and its ordered options.
type PollBuilder struct {
	question string
	options  []string
}

// NewPollBuilder creates a poll builder
func NewPollBuilder(question string, options ...string) *PollBuilder {
	return &PollBuilder{
		question: question,
		options:  append([]string{}, options...),
	}
}

// SetQuestion replaces the poll question
func (pb *PollBuilder) SetQuestion(question string) *PollBuilder {
	pb.question = question
	return pb
}

// AddOption appends an option
func (pb *PollBuilder) AddOption(option string) *PollBuilder {
	pb.options = append(pb.options, option)
	return pb
}

// RemoveOption removes the option at index.
func (pb *PollBuilder) RemoveOption(index int) error {
	if index < 0 || index >= len(pb.options) {
		return errorwrapper.NewKindError(errorwrapper.ErrIndexOutOfRange, "options", index,
			fmt.Sprintf("option index out of range [0, %d)", len(pb.options)))
	}
	pb.options = append(pb.options[:index], pb.options[index+1:]...)
	return nil
}

// GetOptions returns a copy of the options.
func (pb *PollBuilder) GetOptions() []string {
	return append([]string{}, pb.options...)
}

// ToPayload returns the poll verbatim: no truncation, no deduplication.
func (pb *PollBuilder) ToPayload() Poll {
	return Poll{
		Question: pb.question,
		Options:  pb.GetOptions(),
	}
}
