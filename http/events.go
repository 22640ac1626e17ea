package http

import "github.com/asaskevich/EventBus"

const (
	// EventRequestSettled is published once per verb invocation, after callbacks ran.
	EventRequestSettled = "request:settled"
)

// Event describes one settled request.
type Event struct {
	Method Method
	URI    string
	Err    error
}

func publish(bus EventBus.Bus, event *Event) {
	if bus == nil {
		return
	}

	bus.Publish(EventRequestSettled, event)
}
