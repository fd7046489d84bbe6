package astar

// EventKind classifies a trace entry by the decision it records.
type EventKind int

const (
	EventInit EventKind = iota
	EventIteration
	EventPathTested
	EventLinkTested
	EventSkipCycle
	EventSkipPrune
	EventGoalFound
	EventGoalDisable
	EventGoalPark
	EventDominanceExisting
	EventDominanceCandidate
	EventPathAdded
	EventExpansionDisable
	EventBestReport
	EventConverged
	EventSummary
)

var eventKindNames = [...]string{
	EventInit:               "init",
	EventIteration:          "iteration",
	EventPathTested:         "path-tested",
	EventLinkTested:         "link-tested",
	EventSkipCycle:          "skip-cycle",
	EventSkipPrune:          "skip-prune",
	EventGoalFound:          "goal-found",
	EventGoalDisable:        "goal-disable",
	EventGoalPark:           "goal-park",
	EventDominanceExisting:  "dominance-disable-existing",
	EventDominanceCandidate: "dominance-disable-candidate",
	EventPathAdded:          "path-added",
	EventExpansionDisable:   "expansion-disable",
	EventBestReport:         "best-report",
	EventConverged:          "converged",
	EventSummary:            "summary",
}

// String returns the stable kebab-case name used in logs.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Event is one trace entry.
//
// PathID is the pool id the event is about, or -1 when none applies.
// Length is the Length of that path at the time of the event.
type Event struct {
	Kind      EventKind
	Iteration int
	PathID    int
	Length    int64
	Message   string
}

// Trace is the ordered decision log of a session.
type Trace []Event

// Lines returns the messages in order.
func (t Trace) Lines() []string {
	out := make([]string, len(t))
	for i, e := range t {
		out[i] = e.Message
	}
	return out
}

// Of returns the events of the given kind, preserving order.
func (t Trace) Of(kind EventKind) Trace {
	var out Trace
	for _, e := range t {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events of the given kind were recorded.
func (t Trace) Count(kind EventKind) int {
	n := 0
	for _, e := range t {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
