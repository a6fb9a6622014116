package catalog

import "github.com/google/uuid"

// Phase is the lifecycle position of a fetch.
type Phase int

const (
	PhasePending Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailureMessage is the only fetch failure text surfaced to users,
// whatever the underlying cause.
const FailureMessage = "Failed to fetch courses"

// FetchState tracks one fetch from pending to its final outcome.
// A state settles at most once: Resolve and Fail are no-ops once settled.
type FetchState struct {
	id      string
	phase   Phase
	courses []Course
	message string
}

// NewFetchState returns a pending state with a fresh identity.
func NewFetchState() *FetchState {
	return &FetchState{id: uuid.NewString(), phase: PhasePending}
}

// ID identifies this fetch. Results tagged with a different ID belong to
// a superseded or torn-down fetch and must be discarded.
func (f *FetchState) ID() string { return f.id }

func (f *FetchState) Phase() Phase { return f.phase }

// Settled reports whether the state reached a final phase.
func (f *FetchState) Settled() bool { return f.phase != PhasePending }

// Courses returns the fetched collection; nil unless the phase is ready.
func (f *FetchState) Courses() []Course { return f.courses }

// Message returns the failure text; empty unless the phase is failed.
func (f *FetchState) Message() string { return f.message }

// Accepts reports whether a result tagged with id may settle this state.
func (f *FetchState) Accepts(id string) bool {
	return id == f.id && !f.Settled()
}

// Resolve moves a pending state to ready with the given collection.
// An empty collection is a valid ready result.
func (f *FetchState) Resolve(courses []Course) {
	if f.Settled() {
		return
	}
	f.phase = PhaseReady
	f.courses = courses
}

// Fail moves a pending state to failed with the given message.
func (f *FetchState) Fail(message string) {
	if f.Settled() {
		return
	}
	f.phase = PhaseFailed
	f.message = message
}
