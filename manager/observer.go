package manager

import "github.com/harishravi121/speeddial/observability"

// Manager event types emitted around store and dialer operations.
const (
	EventInit         observability.EventType = "speeddial.init"
	EventAdd          observability.EventType = "speeddial.add"
	EventGet          observability.EventType = "speeddial.get"
	EventRemove       observability.EventType = "speeddial.remove"
	EventDialStart    observability.EventType = "speeddial.dial.start"
	EventDialComplete observability.EventType = "speeddial.dial.complete"
	EventTeardown     observability.EventType = "speeddial.teardown"
	EventError        observability.EventType = "speeddial.error"
)
