package feud

import "encoding/json"

// ViewState is the presentation collaborator hook for the opaque
// rendered-state blob. The core never inspects the blob; it is
// captured into snapshots and handed back on undo.
type ViewState interface {
	Capture() json.RawMessage
	Restore(view json.RawMessage)
}

// Recognizer is the speech collaborator. The core constrains the
// recognition vocabulary at every round start; transcripts come back
// through HandlePlayerAnswer like any other guess. Unsupported
// recognition is surfaced only via Supported, never mid-operation.
type Recognizer interface {
	Supported() bool
	LoadGrammar(words []string)
}
