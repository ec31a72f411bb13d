package errors

// Well-known error codes.
const (
	CodePatchTargetMissing = "RE0001"
	CodeDuplicateKey       = "RE0002"
	CodeCodecTruncated     = "RE0003"
	CodeCodecLimit         = "RE0004"
	CodeConfigInvalid      = "RE0005"
	CodeTreeCorrupt        = "RE0006"
	CodeHistoryMiss        = "RE0007"
	CodeParseFailed        = "RE0008"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	CodePatchTargetMissing: {
		Category:   CategoryApply,
		Message:    "patch target missing",
		Detail:     "A patch addressed a live node that the identity index cannot resolve. The patch log was generated against a stale snapshot of the live tree.",
		Suggestion: "Treat the live tree as out of sync and force a full root replacement on the next render cycle.",
	},
	CodeDuplicateKey: {
		Category:   CategoryDiff,
		Message:    "duplicate sibling key",
		Detail:     "More than one child of the same parent carries the same reconciliation key. The first occurrence wins; later duplicates are matched positionally.",
		Suggestion: "Make keys unique among siblings.",
	},
	CodeCodecTruncated: {
		Category: CategoryCodec,
		Message:  "patch log truncated",
		Detail:   "The encoded patch log ended before all announced records were read.",
	},
	CodeCodecLimit: {
		Category: CategoryCodec,
		Message:  "decode limit exceeded",
		Detail:   "A length prefix, collection count, or nesting depth in the encoded patch log exceeds the configured limit.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "invalid configuration",
	},
	CodeTreeCorrupt: {
		Category:   CategoryApply,
		Message:    "live tree corrupt",
		Detail:     "A previous apply cycle failed mid-way. The live tree no longer matches the retained virtual tree.",
		Suggestion: "Render again; the engine will replace the root subtree wholesale.",
	},
	CodeHistoryMiss: {
		Category: CategoryCLI,
		Message:  "patch log not found in history",
	},
	CodeParseFailed: {
		Category:   CategoryCLI,
		Message:    "cannot parse HTML fragment",
		Suggestion: "Check that the input is a well-formed HTML fragment.",
	},
}
