package tagtext

import (
	"fmt"
	"strings"
)

// Reply markers and tags of the translation protocol.
const (
	MarkerAlready = "already"
	MarkerRefuse  = "refuse"
	TagQuestion   = "question"
	TagAnswer     = "answer"
)

// Kind classifies a translation reply.
type Kind int

const (
	// Malformed replies carry neither a marker nor both tagged values.
	Malformed Kind = iota
	// Already means the input is already in the target language.
	Already
	// Refused means the model declined to translate.
	Refused
	// Parsed replies carry a non-empty question and answer.
	Parsed
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Already:
		return "already"
	case Refused:
		return "refused"
	case Parsed:
		return "parsed"
	case Malformed:
		return "malformed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Reply is the classified form of a raw translation reply.
// Question and Answer are set only for Parsed.
type Reply struct {
	Kind     Kind
	Question string
	Answer   string
}

// Classify inspects a raw reply. Markers are checked first, in the order
// <already> then <refuse>; anything else must carry both a <question> and an
// <answer> with non-blank content to be Parsed.
func Classify(raw string) Reply {
	switch {
	case HasMarker(raw, MarkerAlready):
		return Reply{Kind: Already}
	case HasMarker(raw, MarkerRefuse):
		return Reply{Kind: Refused}
	}

	question, okQ := Extract(raw, TagQuestion)
	answer, okA := Extract(raw, TagAnswer)
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if !okQ || !okA || question == "" || answer == "" {
		return Reply{Kind: Malformed}
	}

	return Reply{Kind: Parsed, Question: question, Answer: answer}
}
