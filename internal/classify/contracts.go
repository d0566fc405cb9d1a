// Package classify defines the boundary to the optional external fallback
// classifier consulted when rule-based tagging scores below threshold.
package classify

import "context"

// Outcome distinguishes the ways a fallback classification can end. The
// caller, not this package, decides the degrade-to-rule-based policy.
type Outcome int

const (
	// Matched means the classifier returned a usable label set.
	Matched Outcome = iota
	// NotFound means the classifier answered but could not place the text.
	NotFound
	// TransportError covers unreachable endpoints, timeouts and malformed
	// responses. Treated as a normal, non-fatal outcome.
	TransportError
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case NotFound:
		return "not_found"
	case TransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Result is a fallback classification attempt's outcome. Labels are only
// meaningful when Outcome == Matched; Err is only set on TransportError.
type Result struct {
	Subject  string
	Topic    string
	Subtopic string
	Outcome  Outcome
	Err      error
}

// Classifier is the interface the tagger depends on.
type Classifier interface {
	Classify(ctx context.Context, text string) Result
}

// MaxPromptChars bounds the classification text sent to the external
// service.
const MaxPromptChars = 2500

// TruncatePrompt bounds text to MaxPromptChars without splitting a UTF-8
// sequence.
func TruncatePrompt(text string) string {
	if len(text) <= MaxPromptChars {
		return text
	}
	cut := MaxPromptChars
	for cut > 0 && text[cut]&0xC0 == 0x80 {
		cut--
	}
	return text[:cut]
}
