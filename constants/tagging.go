package constants

// TaggingMethod records how a question's subject/topic/subtopic were assigned.
type TaggingMethod string

// Stable values (store these exact strings in DB and JSON output).
const (
	TagNone      TaggingMethod = "none"       // untagged, parser defaults only
	TagRuleBased TaggingMethod = "rule_based" // keyword scoring against the taxonomy
	TagLLM       TaggingMethod = "llm"        // external fallback classifier
)

// Labels used before tagging assigns real values.
const (
	SubjectUnknown     = "Unknown"
	TopicUncategorized = "Uncategorized"
)
