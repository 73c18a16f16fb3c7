package language

import (
	"strings"

	"github.com/pkg/errors"
)

// Sentence boundary and unknown-word symbols shared by both directions.
const (
	StartToken   = "<s>"
	EndToken     = "</s>"
	UnknownToken = "<unk>"
)

// Direction is the order in which a model walks a sentence.
type Direction int

const (
	// LeftToRight conditions each token on its left neighbour (forward model).
	LeftToRight Direction = iota
	// RightToLeft conditions each token on its right neighbour (backward model).
	RightToLeft
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	}
	return "unknown"
}

// ParseDirection accepts the String form of a Direction as well as
// "forward" and "backward".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left-to-right", "forward", "fwd":
		return LeftToRight, nil
	case "right-to-left", "backward", "bwd":
		return RightToLeft, nil
	}
	return 0, errors.Errorf("unknown direction %q", s)
}

// boundaries returns the context a sentence starts in and the symbol predicted after
// its last token.
func (d Direction) boundaries() (first, last string) {
	if d == RightToLeft {
		return EndToken, StartToken
	}
	return StartToken, EndToken
}

// orient returns the tokens of sentence in traversal order. The input is not modified.
func (d Direction) orient(sentence []string) []string {
	if d != RightToLeft {
		return sentence
	}
	seq := make([]string, len(sentence))
	for i, w := range sentence {
		seq[len(sentence)-1-i] = w
	}
	return seq
}
