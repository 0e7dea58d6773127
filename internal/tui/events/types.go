package events

// EventType identifies the type of event.
type EventType string

const (
	// Tree events
	TreeChangedEvent EventType = "tree.changed"
	NodeToggledEvent EventType = "tree.node.toggled"
	TreeResetEvent   EventType = "tree.reset"

	// Selection events
	SelectionChangedEvent EventType = "selection.changed"

	// Model events
	ModelLoadedEvent   EventType = "model.loaded"
	ModelSwitchedEvent EventType = "model.switched"

	// Search events
	SearchQueryEvent  EventType = "search.query"
	SearchResultEvent EventType = "search.result"

	// UI events
	StatusMessageEvent EventType = "ui.status"
	HelpToggleEvent    EventType = "ui.help.toggle"
)

// Event represents an event in the system.
type Event struct {
	Type    EventType
	Payload any
}

// Event payload types

// NodeToggledPayload carries a user expand/collapse request originating
// from a rendered tree node.
type NodeToggledPayload struct {
	Key      int64
	Expanded bool
}

// SelectionChangedPayload carries the current selection in order.
type SelectionChangedPayload struct {
	Keys []int64
}

// ModelLoadedPayload announces a model became available for browsing.
type ModelLoadedPayload struct {
	Name      string
	NodeCount int
}

// SearchQueryPayload carries a (debounced) search-as-you-type query.
type SearchQueryPayload struct {
	Query string
}

// SearchResultPayload reports where a query matched, if anywhere.
type SearchResultPayload struct {
	Query string
	Key   int64
	Found bool
}

// StatusMessagePayload surfaces a transient status-bar message.
type StatusMessagePayload struct {
	Message string
	Type    string // "info", "warning", "error", "success"
}
